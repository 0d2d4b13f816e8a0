package auth

// Request and response shapes mirror the public API exactly, including its
// mixed field casing, which the deployed frontend depends on.

type SignupRequest struct {
	Name     string `json:"Name" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
	Password string `json:"Password" validate:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Email   string `json:"Email"`
	Name    string `json:"Name"`
}

type LoginRequest struct {
	Email    string `json:"Email" validate:"required"`
	Password string `json:"Password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"Email"`
	Name  string `json:"Name"`
	Role  string `json:"Role"`
}

type ResetRequestRequest struct {
	Email string `json:"Email"`
}

type ResetConfirmRequest struct {
	ResetToken string `json:"ResetToken"`
	Password   string `json:"Password"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"Name"`
	NewPassword *string `json:"newPassword"`
}

type UpdateProfileResponse struct {
	Name string `json:"Name"`
}
