package domain

import "time"

// User represents a user of the application in the domain.
// PasswordHash is never part of a response shape.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsDeleted reports whether the user has been soft deleted.
func (u User) IsDeleted() bool {
	return u.DeletedAt != nil
}
