package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pulselytics/pulselytics-go/internal/model"
	"github.com/pulselytics/pulselytics-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService() (*AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewAuthService(store, "test-secret", 0), store
}

func TestRegister(t *testing.T) {
	svc, store := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.AuthRequest{
		Email:    "a@x.com",
		Password: "pw1",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("Register() returned empty token")
	}
	if resp.Email != "a@x.com" {
		t.Errorf("Register() email = %q, want %q", resp.Email, "a@x.com")
	}
	if resp.Name != nil {
		t.Errorf("Register() name = %v, want nil", *resp.Name)
	}

	stored := store.users["a@x.com"]
	if stored == nil {
		t.Fatal("Register() did not persist the user")
	}
	if stored.PasswordHash == "pw1" || stored.PasswordHash == "" {
		t.Error("Register() stored a plaintext or empty password hash")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, store := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw2"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want ErrEmailTaken", err)
	}
	if len(store.users) != 1 {
		t.Errorf("store holds %d users, want 1", len(store.users))
	}
}

func TestRegister_EmptyEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.AuthRequest{Email: "", Password: "pw1"})
	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Register() error = %v, want ErrEmailRequired", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.AuthRequest{Email: "not-an-email", Password: "pw1"})
	if !errors.Is(err, ErrEmailInvalid) {
		t.Errorf("Register() error = %v, want ErrEmailInvalid", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: ""})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Register() error = %v, want ErrPasswordRequired", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}

	subject, ok := svc.Subject(resp.Token)
	if !ok {
		t.Fatal("Subject() rejected a token issued by Login()")
	}
	if subject != "a@x.com" {
		t.Errorf("Subject() = %q, want %q", subject, "a@x.com")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Login(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, wrongPw := svc.Login(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "wrong"})
	_, unknown := svc.Login(context.Background(), model.AuthRequest{Email: "b@x.com", Password: "pw1"})

	if !errors.Is(wrongPw, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
		t.Fatalf("Login() errors = %v / %v, want ErrInvalidCredentials for both", wrongPw, unknown)
	}
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("Login() messages differ: %q vs %q (leaks account existence)", wrongPw, unknown)
	}
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := svc.CurrentUser(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("CurrentUser() unexpected error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("CurrentUser() email = %q, want %q", user.Email, "a@x.com")
	}
}

func TestCurrentUser_InvalidToken(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.CurrentUser(context.Background(), "garbage")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("CurrentUser() error = %v, want ErrUnauthorized", err)
	}
}

func TestCurrentUser_UserGone(t *testing.T) {
	svc, store := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.AuthRequest{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	delete(store.users, "a@x.com")

	if _, err := svc.CurrentUser(context.Background(), resp.Token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("CurrentUser() error = %v, want ErrUnauthorized for vanished user", err)
	}
}

func TestSubject_InvalidToken(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, ok := svc.Subject("garbage"); ok {
		t.Error("Subject() accepted a garbage token")
	}
}
