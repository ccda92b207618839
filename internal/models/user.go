package models

import (
	"time"
)

// Role names as seeded in the roles table. Route guards reference these
// constants instead of raw strings.
const (
	RoleAdmin               = "Administrador General"
	RoleOpsSupervisor       = "Supervisor Operaciones"
	RoleCampaignOperator    = "Operador Publimes"
	RoleInventorySupervisor = "Supervisor Historial"
	RoleInventoryOperator   = "Operador Historial"
)

// User maps to the users table.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName     string    `json:"fullName" gorm:"column:full_name;not null;size:100"`
	Username     string    `json:"username" gorm:"column:username;unique;not null;size:50"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null;size:255"` // never exposed through JSON
	Active       bool      `json:"active" gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`

	Roles []UserRole `json:"roles,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for User.
func (User) TableName() string {
	return "users"
}

// Role maps to the roles table.
type Role struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"column:name;unique;not null;size:50"`
	Description *string `json:"description,omitempty" gorm:"column:description;size:200"`
}

// TableName sets the table name for Role.
func (Role) TableName() string {
	return "roles"
}

// UserRole is the many-to-many linking row between users and roles.
type UserRole struct {
	UserID     int64     `json:"userId" gorm:"column:user_id;primaryKey"`
	RoleID     int64     `json:"roleId" gorm:"column:role_id;primaryKey"`
	AssignedAt time.Time `json:"assignedAt" gorm:"column:assigned_at;not null;autoCreateTime"`

	Role Role `json:"role" gorm:"foreignKey:RoleID"`
}

// TableName sets the table name for UserRole.
func (UserRole) TableName() string {
	return "user_roles"
}

// RoleNames flattens the user's role rows into the plain role-name set
// carried in JWT claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, ur := range u.Roles {
		names = append(names, ur.Role.Name)
	}
	return names
}
