package httptransport

// UserItem is the wire shape of a resolved user.
type UserItem struct {
	ID           int64  `json:"id"`
	OpenID       string `json:"openId"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	LoginMethod  string `json:"loginMethod,omitempty"`
	Role         string `json:"role"`
	LastSignedIn string `json:"lastSignedIn"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type MeResponse struct {
	User *UserItem `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
