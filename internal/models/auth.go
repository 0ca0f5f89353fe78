package models

// GoogleAuthURLResponse carries the consent URL for JSON clients
// swagger:model GoogleAuthURLResponse
type GoogleAuthURLResponse struct {
	// example: https://accounts.google.com/o/oauth2/auth?client_id=...
	GoogleAuthURL string `json:"google_auth_url"`
}

// SignInResponse represents a successful Google sign-in
// swagger:model SignInResponse
type SignInResponse struct {
	// example: 7d9f7a8e-4c55-4a6e-9b0e-3f8e6a2b1c4d
	UserID string `json:"user_id"`

	// example: ada@example.com
	Email string `json:"email"`

	// example: Ada Lovelace
	Name string `json:"name"`

	// Wallet number
	// example: 4829301746523
	Wallet string `json:"wallet"`

	// example: https://lh3.googleusercontent.com/a/photo.jpg
	Picture string `json:"picture"`

	// Bearer token valid for 7 days
	// example: JWT_TOKEN
	Token string `json:"token"`
}
