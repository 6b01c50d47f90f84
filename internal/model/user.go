package model

import "time"

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"

	DefaultUserRole = "User"
)

// User is a managed account as returned by the users API
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // references Role.Name
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserDraft is the payload of the create/edit user form
type UserDraft struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"required"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// NewUserDraft returns the blank form used for "Add New User"
func NewUserDraft() UserDraft {
	return UserDraft{Role: DefaultUserRole, Status: UserStatusActive}
}

// DraftFromUser prefills the edit form from an existing user
func DraftFromUser(u User) UserDraft {
	return UserDraft{Name: u.Name, Email: u.Email, Role: u.Role, Status: u.Status}
}

// Profile is the operator's own account
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProfileUpdate carries the editable profile fields. Password is forwarded, never stored here.
type ProfileUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6"`
}
