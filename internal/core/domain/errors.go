package domain

import "errors"

var (
	// ErrUnauthorized is returned by privileged operations invoked without a
	// resolved caller identity. No store write happens once it is raised.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when a caller's role or client scope does not
	// permit the requested record.
	ErrForbidden = errors.New("access forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileExists      = errors.New("profile already exists")
	ErrProfileNotFound    = errors.New("profile not found")

	// ErrSlugTaken is returned when inserting or renaming a project or blog
	// post would violate slug uniqueness within its collection.
	ErrSlugTaken = errors.New("slug already in use")

	ErrClientNotFound       = errors.New("client not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrBlogPostNotFound     = errors.New("blog post not found")
	ErrDocNotFound          = errors.New("doc not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrLicenseNotFound      = errors.New("license not found")
	ErrAnnouncementNotFound = errors.New("no active announcement")

	// ErrDuplicateSubmission is returned when an identical public form
	// submission arrives within the throttle window.
	ErrDuplicateSubmission = errors.New("duplicate submission")
)
