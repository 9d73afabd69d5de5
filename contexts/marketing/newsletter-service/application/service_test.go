package application

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"harvest/contexts/marketing/newsletter-service/adapters/memory"
	domainerrors "harvest/contexts/marketing/newsletter-service/domain/errors"
)

func TestSubscribeBuildsTagsAndDefaults(t *testing.T) {
	client := memory.NewClient()
	service := Service{Client: client}

	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email:     "person@example.com",
		FirstName: "Pat",
		Interests: []string{"markets", "food-kitchen"},
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if !result.Success || result.Message != "Successfully subscribed to the newsletter!" {
		t.Fatalf("unexpected result: %+v", result)
	}

	contacts := client.Contacts()
	if len(contacts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(contacts))
	}
	contact := contacts[0]
	wantTags := []string{"newsletter", "website-signup", "interest-markets", "interest-food-kitchen"}
	if !reflect.DeepEqual(contact.Tags, wantTags) {
		t.Fatalf("tags mismatch: got %v want %v", contact.Tags, wantTags)
	}
	if contact.Source != "The Harvest Website Newsletter" {
		t.Fatalf("default source not applied: %q", contact.Source)
	}
}

func TestSubscribeKeepsCallerSource(t *testing.T) {
	client := memory.NewClient()
	service := Service{Client: client}

	if _, err := service.Subscribe(context.Background(), SubscribeInput{
		Email:  "person@example.com",
		Source: "Harvest Open Day",
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if source := client.Contacts()[0].Source; source != "Harvest Open Day" {
		t.Fatalf("caller source overridden: %q", source)
	}
}

func TestSubscribeValidation(t *testing.T) {
	client := memory.NewClient()
	service := Service{Client: client}

	cases := []struct {
		name  string
		input SubscribeInput
	}{
		{"empty email", SubscribeInput{}},
		{"malformed email", SubscribeInput{Email: "not-an-email"}},
		{"unknown interest", SubscribeInput{Email: "person@example.com", Interests: []string{"gardening"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Subscribe(context.Background(), tc.input)
			if !errors.Is(err, domainerrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(client.Contacts()) != 0 {
		t.Fatal("invalid input must not reach the client")
	}
}

func TestSubscribePropagatesClientErrors(t *testing.T) {
	cases := []struct {
		name      string
		clientErr error
		sentinel  error
	}{
		{"not configured", domainerrors.ErrNotConfigured, domainerrors.ErrNotConfigured},
		{"auth failed", domainerrors.ErrAuthFailed, domainerrors.ErrAuthFailed},
		{"duplicate", &domainerrors.DuplicateContactError{Message: "duplicated contacts"}, domainerrors.ErrDuplicateContact},
		{"connection", domainerrors.ErrConnection, domainerrors.ErrConnection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := memory.NewClient()
			client.Err = tc.clientErr
			service := Service{Client: client}

			_, err := service.Subscribe(context.Background(), SubscribeInput{Email: "person@example.com"})
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestSubscribeDuplicateKeepsProviderMessage(t *testing.T) {
	client := memory.NewClient()
	client.Err = &domainerrors.DuplicateContactError{Message: "This contact already exists"}
	service := Service{Client: client}

	_, err := service.Subscribe(context.Background(), SubscribeInput{Email: "person@example.com"})
	if err == nil || err.Error() != "This contact already exists" {
		t.Fatalf("provider message must pass through, got %v", err)
	}
}

func TestSubscribeWithoutClient(t *testing.T) {
	service := Service{}

	_, err := service.Subscribe(context.Background(), SubscribeInput{Email: "person@example.com"})
	if !errors.Is(err, domainerrors.ErrNotConfigured) {
		t.Fatalf("missing client must report not configured, got %v", err)
	}
}
