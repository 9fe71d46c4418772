package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Profile models an authenticated actor: either a back-office admin or a
// portal client. The role gates access to the admin mutation surface.
type Profile struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	ClientID     string    `json:"client_id,omitempty" bson:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Client is the billing/company record a client-role profile belongs to.
// Usage is 1:1 with Profile even though the schema would allow more.
type Client struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ProfileID string    `json:"profile_id" bson:"profile_id"`
	Company   string    `json:"company" bson:"company"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
