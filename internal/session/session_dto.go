package session

// Session is the identity attached to every request. Handlers receive it
// explicitly and pass it down to services that need the upstream credential.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
	Guest  bool

	// UpstreamToken is the shop-backend bearer token for registered users.
	// Empty for guests and anonymous sessions; order submission must still
	// succeed without it.
	UpstreamToken string
}

func (s Session) Authenticated() bool {
	return s.UserID != "" && !s.Guest
}

// ==================== REQUEST STRUCTS ====================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ==================== RESPONSE STRUCTS ====================

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	Guest bool   `json:"guest"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
