package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SafeUser is the account shape returned to clients. It never carries the
// password hash.
type SafeUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) SafeView() SafeUser {
	return SafeUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, name, email, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
