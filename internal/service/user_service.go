package service

import (
	"strings"

	"adminconsole/internal/listing"
	"adminconsole/internal/model"
	"adminconsole/internal/repository"
)

// UserController is the list controller behind the Users screen
type UserController = listing.Controller[model.User, model.UserDraft]

// UserSchema describes how users are searched, sorted and exported.
// Created At is rendered with dateLayout.
func UserSchema(dateLayout string) *listing.Schema[model.User] {
	if dateLayout == "" {
		dateLayout = "2006-01-02"
	}
	return &listing.Schema[model.User]{
		Noun:   "user",
		Plural: "users",
		ID:     func(u model.User) string { return u.ID },
		Name:   func(u model.User) string { return u.Name },
		Searchable: func(u model.User) []string {
			return []string{u.Name, u.Email}
		},
		SortFields: []listing.SortField[model.User]{
			{Key: "name", Compare: func(a, b model.User) int { return strings.Compare(a.Name, b.Name) }},
			{Key: "email", Compare: func(a, b model.User) int { return strings.Compare(a.Email, b.Email) }},
			{Key: "role", Compare: func(a, b model.User) int { return strings.Compare(a.Role, b.Role) }},
			{Key: "status", Compare: func(a, b model.User) int { return strings.Compare(a.Status, b.Status) }},
			{Key: "createdAt", Compare: func(a, b model.User) int { return a.CreatedAt.Compare(b.CreatedAt) }},
		},
		Columns: []listing.Column[model.User]{
			{Header: "Name", Value: func(u model.User) string { return u.Name }},
			{Header: "Email", Value: func(u model.User) string { return u.Email }},
			{Header: "Role", Value: func(u model.User) string { return u.Role }},
			{Header: "Status", Value: func(u model.User) string { return u.Status }},
			{Header: "Created At", Value: func(u model.User) string {
				if u.CreatedAt.IsZero() {
					return ""
				}
				return u.CreatedAt.Format(dateLayout)
			}},
		},
		DefaultSortKey: "name",
	}
}

// NewUserController wires the users API into a fresh list controller
func NewUserController(repo repository.UserRepository, dateLayout string, opts listing.Options) (*UserController, error) {
	return listing.New[model.User, model.UserDraft](UserSchema(dateLayout), repo, opts)
}
