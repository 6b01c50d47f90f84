package service

import (
	"cmp"
	"strings"

	"adminconsole/internal/listing"
	"adminconsole/internal/model"
	"adminconsole/internal/repository"
)

// RoleController is the list controller behind the Roles screen
type RoleController = listing.Controller[model.Role, model.RoleDraft]

// RoleSchema describes how roles are searched, sorted and exported
func RoleSchema() *listing.Schema[model.Role] {
	return &listing.Schema[model.Role]{
		Noun:   "role",
		Plural: "roles",
		ID:     func(r model.Role) string { return r.ID },
		Name:   func(r model.Role) string { return r.Name },
		Searchable: func(r model.Role) []string {
			return []string{r.Name}
		},
		SortFields: []listing.SortField[model.Role]{
			{Key: "name", Compare: func(a, b model.Role) int { return strings.Compare(a.Name, b.Name) }},
			{Key: "description", Compare: func(a, b model.Role) int { return strings.Compare(a.Description, b.Description) }},
			// permissions sort by how many are granted
			{Key: "permissions", Compare: func(a, b model.Role) int { return cmp.Compare(len(a.Permissions), len(b.Permissions)) }},
		},
		Columns: []listing.Column[model.Role]{
			{Header: "Role Name", Value: func(r model.Role) string { return r.Name }},
			{Header: "Description", Value: func(r model.Role) string { return r.Description }},
			{Header: "Permissions", Value: func(r model.Role) string { return strings.Join(r.Permissions, ", ") }},
		},
		DefaultSortKey: "name",
	}
}

// NewRoleController wires the roles API into a fresh list controller
func NewRoleController(repo repository.RoleRepository, opts listing.Options) (*RoleController, error) {
	return listing.New[model.Role, model.RoleDraft](RoleSchema(), repo, opts)
}
