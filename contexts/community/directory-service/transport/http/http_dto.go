package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type SubmitEventRequest struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	SubmittedBy  string `json:"submittedBy,omitempty"`
}

type SubmitBusinessRequest struct {
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
	SubmittedBy    string `json:"submittedBy,omitempty"`
	SubmitterEmail string `json:"submitterEmail"`
}

type EventItem struct {
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

type BusinessItem struct {
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
	SubmitterEmail string `json:"submitterEmail,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type SubmitEventResponse struct {
	Success bool      `json:"success"`
	Event   EventItem `json:"event"`
}

type SubmitBusinessResponse struct {
	Success  bool         `json:"success"`
	Business BusinessItem `json:"business"`
}

type EventListResponse struct {
	Events []EventItem `json:"events"`
}

type BusinessListResponse struct {
	Businesses []BusinessItem `json:"businesses"`
}
