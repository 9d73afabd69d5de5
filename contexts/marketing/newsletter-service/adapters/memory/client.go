package memory

import (
	"context"
	"fmt"
	"sync"

	"harvest/contexts/marketing/newsletter-service/ports"
)

// Client records upserted contacts in memory. Test double for the CRM.
type Client struct {
	mu sync.Mutex

	nextID   int
	contacts []ports.ContactInput

	// Err, when set, is returned from every upsert.
	Err error
}

func NewClient() *Client {
	return &Client{nextID: 1}
}

func (c *Client) UpsertContact(_ context.Context, input ports.ContactInput) (ports.ContactResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return ports.ContactResult{}, c.Err
	}
	c.contacts = append(c.contacts, input)
	id := fmt.Sprintf("contact-%d", c.nextID)
	c.nextID++
	return ports.ContactResult{ContactID: id}, nil
}

// Contacts returns a copy of everything upserted so far.
func (c *Client) Contacts() []ports.ContactInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.ContactInput, len(c.contacts))
	copy(out, c.contacts)
	return out
}
