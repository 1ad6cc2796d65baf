package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/pulselytics/pulselytics-go/internal/model"
	"github.com/pulselytics/pulselytics-go/internal/repository"
	"github.com/pulselytics/pulselytics-go/internal/service"
)

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

type fakeEventStore struct {
	events []*model.Event
}

func (f *fakeEventStore) Insert(_ context.Context, event *model.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) CountByType(_ context.Context) ([]model.TypeCount, error) {
	counts := make(map[string]int64)
	for _, e := range f.events {
		counts[e.Type]++
	}
	rows := make([]model.TypeCount, 0, len(counts))
	for typ, count := range counts {
		rows = append(rows, model.TypeCount{Type: typ, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows, nil
}

func newTestAuthService() (*service.AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	return service.NewAuthService(store, "test-secret", 0), store
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["detail"]
}
