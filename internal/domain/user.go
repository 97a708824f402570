package domain

import (
	"time"
)

type Role string

const (
	RoleOwner         Role = "owner"
	RoleManager       Role = "manager"
	RolePlatformAdmin Role = "platform_admin"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	EmployerID   *int64    `json:"employerID"` // nil until the user creates or joins a company
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
