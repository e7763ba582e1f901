package domain

// User models an authenticated principal. The role is fixed at creation and
// never changes for the lifetime of the identity. Passwords live only in the
// credential registry; a User never carries one.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Location string `json:"location,omitempty"`
	Verified bool   `json:"verified"`
}
