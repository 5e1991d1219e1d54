package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest replaces the whole profile. Empty optional fields clear
// the stored value.
type UpdateProfileRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Gender    *string  `json:"gender"`
	BirthDate *string  `json:"birthDate"`
	Height    *float64 `json:"height"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

// AuthUser mirrors the identity carried in the token.
type AuthUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Gender    *string  `json:"gender"`
	BirthDate *string  `json:"birth_date"`
	Height    *float64 `json:"height"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}

type ProfileResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
