package domain

import "time"

// User is the public view of an account. The password digest never appears here.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRecord is the persisted form of a user inside the users collection.
type UserRecord struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// Public strips the password digest.
func (r *UserRecord) Public() *User {
	u := r.User
	return &u
}

type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
