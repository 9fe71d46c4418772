package ports

// Caller is the resolved identity of a request, threaded explicitly into
// every privileged operation instead of being pulled from ambient context.
// A zero Caller means the request carried no identity.
type Caller struct {
	ProfileID string
	Role      string
	ClientID  string
}

// Resolved reports whether an identity was established for the request.
func (c Caller) Resolved() bool {
	return c.ProfileID != ""
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == "admin"
}
