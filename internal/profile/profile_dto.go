package profile

// UpdateRequest carries the editable account fields. All fields are
// optional; the backend ignores absent ones.
type UpdateRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6"`
}
