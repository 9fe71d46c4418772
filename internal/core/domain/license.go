package domain

import "time"

// LicenseStatus represents the activation state of a software license.
type LicenseStatus string

const (
	LicenseActive  LicenseStatus = "active"
	LicenseLocked  LicenseStatus = "locked"
	LicenseExpired LicenseStatus = "expired"
)

// License is a key issued against a delivered project.
type License struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	ProjectID string        `json:"project_id" bson:"project_id"`
	Key       string        `json:"key" bson:"key"`
	Status    LicenseStatus `json:"status" bson:"status"`
	Expiry    *time.Time    `json:"expiry,omitempty" bson:"expiry,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// LicenseDomain binds a domain name to a license for activation tracking.
// The configured per-license maximum is advisory: registration beyond the
// maximum is recorded, not rejected.
type LicenseDomain struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	LicenseID string    `json:"license_id" bson:"license_id"`
	Domain    string    `json:"domain" bson:"domain"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
