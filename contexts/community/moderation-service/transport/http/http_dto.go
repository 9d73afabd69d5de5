package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool `json:"success"`
}

type PendingEventItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	Status       string `json:"status"`
	SubmittedBy  string `json:"submittedBy,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type PendingBusinessItem struct {
	ID             int64  `json:"id"`
	OwnerUserID    *int64 `json:"userId,omitempty"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Website        string `json:"website,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	Status         string `json:"status"`
	SubmittedBy    string `json:"submittedBy,omitempty"`
	SubmitterEmail string `json:"submitterEmail"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type PendingEventsResponse struct {
	Events []PendingEventItem `json:"events"`
}

type PendingBusinessesResponse struct {
	Businesses []PendingBusinessItem `json:"businesses"`
}
