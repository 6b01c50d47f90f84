package model

import "time"

// RoleUsage counts the users assigned to one role
type RoleUsage struct {
	Role      string `json:"role"`
	UserCount int    `json:"user_count"`
}

// RegistrationPoint is the running number of registered users at a date
type RegistrationPoint struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// Registration is one entry of the recent registrations list
type Registration struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Dashboard is the overview of the console's users and roles
type Dashboard struct {
	TotalUsers       int                 `json:"total_users"`
	TotalRoles       int                 `json:"total_roles"`
	TotalPermissions int                 `json:"total_permissions"`
	UsersPerRole     []RoleUsage         `json:"users_per_role"`
	Registrations    []RegistrationPoint `json:"registrations"`
	Recent           []Registration      `json:"recent"`
	GeneratedAt      time.Time           `json:"generated_at"`
}
