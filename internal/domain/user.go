package domain

import "github.com/google/uuid"

type User struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	ProfileURL *string
}

// NewUser assigns a fresh id; identity is the id alone.
func NewUser(name, email string, phone, profileURL *string) User {
	return User{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		ProfileURL: profileURL,
	}
}
