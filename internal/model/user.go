package model

// User is the persisted account document in the "user" collection.
// PasswordHash is never serialized into API responses.
type User struct {
	Email        string  `bson:"email"`
	Name         *string `bson:"name"`
	PasswordHash string  `bson:"password_hash"`
}

// AuthRequest represents a registration or login request.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful registration or login, carrying a
// signed token alongside the account's public fields.
type AuthResponse struct {
	Token string  `json:"token"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// UserResponse represents user data safe for API responses (no hash).
type UserResponse struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}
