package domain

import "time"

// ProjectRequest is an anonymous public submission from the project-request
// form. It is unowned: no client or profile reference.
type ProjectRequest struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Budget        string    `json:"budget,omitempty" bson:"budget,omitempty"`
	Timeframe     string    `json:"timeframe,omitempty" bson:"timeframe,omitempty"`
	Description   string    `json:"description" bson:"description"`
	AttachmentURL string    `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ContactMessage is an anonymous public submission from the contact form.
type ContactMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
