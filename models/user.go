// models/user.go
package models

import "time"

// User roles. Administrative access is decided by the role field on the
// users document, never by a token claim.
const (
	RoleAdmin  = "admin"
	RoleClient = "cliente"
)

// User represents an account on the platform.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // admin | cliente
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
