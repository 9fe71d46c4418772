package domain

import "time"

// Announcement is a site-wide banner. The latest active one wins; dismissal
// state lives client-side and is never stored here.
type Announcement struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Text      string    `json:"text" bson:"text"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ActivityEntry is one record in the append-only audit trail. There is no
// update or delete path for this collection.
type ActivityEntry struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	ProfileID string            `json:"profile_id" bson:"profile_id"`
	Action    string            `json:"action" bson:"action"`
	Meta      map[string]string `json:"meta,omitempty" bson:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
