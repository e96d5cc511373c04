package models

// LoginRequest holds the submitted administrator credentials.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}
