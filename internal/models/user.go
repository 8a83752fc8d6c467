package models

// Identity is the minimal authenticated-user record returned by the backend
// on login/registration and persisted locally between runs. Only Username is
// contractual; Email is kept when the backend supplies it.
type Identity struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
