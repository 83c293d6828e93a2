package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Envelope
	Token  string `json:"token,omitempty"`
	UserID string `json:"userId,omitempty"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

// MessageResponse acknowledges a mutation with no payload beyond the envelope.
type MessageResponse struct {
	Envelope
}
