package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulselytics/pulselytics-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const userCollection = "user"

// UserRepository handles user persistence in the "user" collection.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts a new user after checking no document with the same
// email exists. The check-then-insert is not atomic; uniqueness holds
// only in the absence of concurrent registrations for the same email.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.store.FindOne(ctx, userCollection, bson.M{"email": user.Email}, &model.User{})
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	return r.store.InsertOne(ctx, userCollection, user)
}

// FindByEmail retrieves a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.store.FindOne(ctx, userCollection, bson.M{"email": email}, user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
