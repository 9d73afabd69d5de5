package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateProfileRequest carries only the owner-editable fields. Unknown JSON
// keys (status, userId, ...) have no field to land in and are dropped by the
// decoder.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Website     *string `json:"website,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type BusinessProfileItem struct {
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

type MyBusinessResponse struct {
	Business *BusinessProfileItem `json:"business"`
}

type UnclaimedResponse struct {
	Businesses []BusinessProfileItem `json:"businesses"`
}

type ClaimResponse struct {
	Success  bool                `json:"success"`
	Business BusinessProfileItem `json:"business"`
}

type UpdateProfileResponse struct {
	Success  bool                `json:"success"`
	Business BusinessProfileItem `json:"business"`
}
