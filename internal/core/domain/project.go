package domain

import "time"

// ProjectStatus represents the delivery state of a client project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectDelivered ProjectStatus = "delivered"
	ProjectArchived  ProjectStatus = "archived"
)

// Project is a client engagement, doubling as a public portfolio entry when
// Featured is set. Slug is unique across the collection.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	ClientID    string        `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Slug        string        `json:"slug" bson:"slug"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Description string        `json:"description" bson:"description"`
	Tech        []string      `json:"tech" bson:"tech"`
	DemoURL     string        `json:"demo_url,omitempty" bson:"demo_url,omitempty"`
	DocsURL     string        `json:"docs_url,omitempty" bson:"docs_url,omitempty"`
	Featured    bool          `json:"featured" bson:"featured"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
}
