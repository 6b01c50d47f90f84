package model

import (
	"slices"
	"time"
)

// Permission names a role can grant
const (
	PermissionRead   = "read"
	PermissionWrite  = "write"
	PermissionDelete = "delete"
)

// Permissions lists every grantable permission in display order
var Permissions = []string{PermissionRead, PermissionWrite, PermissionDelete}

// Role groups an ordered set of permission names
type Role struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoleDraft is the payload of the create/edit role form
type RoleDraft struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions" binding:"dive,oneof=read write delete"`
}

// NewRoleDraft returns the blank form used for "Add New Role"
func NewRoleDraft() RoleDraft {
	return RoleDraft{Permissions: []string{}}
}

// DraftFromRole prefills the edit form from an existing role
func DraftFromRole(r Role) RoleDraft {
	return RoleDraft{Name: r.Name, Description: r.Description, Permissions: slices.Clone(r.Permissions)}
}

// TogglePermission grants p when absent and revokes it when present, keeping grant order
func (d *RoleDraft) TogglePermission(p string) {
	if i := slices.Index(d.Permissions, p); i >= 0 {
		d.Permissions = slices.Delete(d.Permissions, i, i+1)
		return
	}
	d.Permissions = append(d.Permissions, p)
}
