package types

// LoginRequest is forwarded to the identity service; no credential handling
// happens locally.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is forwarded to the identity service.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone" validate:"required,min=6,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"omitempty,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
}

// IdentityUser is the user payload the identity service returns.
type IdentityUser struct {
	UUID      string  `json:"uuid"`
	Username  string  `json:"username"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      string  `json:"role"`
}

// AuthResponse is the identity service's response for login and register.
type AuthResponse struct {
	Status      string       `json:"status"`
	Token       string       `json:"token"`
	User        IdentityUser `json:"user"`
	Permissions []string     `json:"permissions"`
}
