package httptransport

type SubscribeRequest struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Source    string   `json:"source,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
