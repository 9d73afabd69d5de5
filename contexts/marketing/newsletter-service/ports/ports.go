package ports

import "context"

// ContactInput is the contact record pushed to the CRM on subscription.
type ContactInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Source    string
	Tags      []string
}

// ContactResult carries the CRM's identifier for the stored contact.
type ContactResult struct {
	ContactID string
}

// ContactClient upserts contacts in the external CRM.
type ContactClient interface {
	UpsertContact(ctx context.Context, input ContactInput) (ContactResult, error)
}
