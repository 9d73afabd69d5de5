package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"harvest/contexts/community/directory-service/application"
	"harvest/contexts/community/directory-service/domain/entities"
	domainerrors "harvest/contexts/community/directory-service/domain/errors"
	"harvest/contexts/community/directory-service/ports"
	httptransport "harvest/contexts/community/directory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SubmitEventHandler(ctx context.Context, req httptransport.SubmitEventRequest) (httptransport.SubmitEventResponse, error) {
	date, err := parseEventDate(req.Date)
	if err != nil {
		return httptransport.SubmitEventResponse{}, domainerrors.NewFieldError("date", "must be an ISO date string")
	}
	event, err := h.Service.SubmitEvent(ctx, ports.NewEvent{
		Title:        req.Title,
		Date:         date,
		Time:         req.Time,
		Location:     req.Location,
		Category:     req.Category,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		SubmittedBy:  req.SubmittedBy,
	})
	if err != nil {
		return httptransport.SubmitEventResponse{}, err
	}
	return httptransport.SubmitEventResponse{
		Success: true,
		Event:   MapEventItem(event),
	}, nil
}

func (h Handler) SubmitBusinessHandler(ctx context.Context, req httptransport.SubmitBusinessRequest) (httptransport.SubmitBusinessResponse, error) {
	business, err := h.Service.SubmitBusiness(ctx, ports.NewBusiness{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Website:        req.Website,
		Facebook:       req.Facebook,
		Instagram:      req.Instagram,
		ImageURL:       req.ImageURL,
		SubmittedBy:    req.SubmittedBy,
		SubmitterEmail: req.SubmitterEmail,
	})
	if err != nil {
		return httptransport.SubmitBusinessResponse{}, err
	}
	return httptransport.SubmitBusinessResponse{
		Success:  true,
		Business: MapBusinessItem(business),
	}, nil
}

func (h Handler) ListEventsHandler(ctx context.Context) (httptransport.EventListResponse, error) {
	items, err := h.Service.ListApprovedEvents(ctx)
	if err != nil {
		return httptransport.EventListResponse{}, err
	}
	resp := httptransport.EventListResponse{Events: make([]httptransport.EventItem, 0, len(items))}
	for _, item := range items {
		resp.Events = append(resp.Events, MapEventItem(item))
	}
	return resp, nil
}

func (h Handler) ListBusinessesHandler(ctx context.Context) (httptransport.BusinessListResponse, error) {
	items, err := h.Service.ListApprovedBusinesses(ctx)
	if err != nil {
		return httptransport.BusinessListResponse{}, err
	}
	resp := httptransport.BusinessListResponse{Businesses: make([]httptransport.BusinessItem, 0, len(items))}
	for _, item := range items {
		resp.Businesses = append(resp.Businesses, MapBusinessItem(item))
	}
	return resp, nil
}

func MapEventItem(event entities.EventSubmission) httptransport.EventItem {
	return httptransport.EventItem{
		ID:           event.ID,
		Title:        event.Title,
		Date:         event.Date.UTC().Format(time.RFC3339),
		Time:         event.Time,
		Location:     event.Location,
		Category:     string(event.Category),
		Description:  event.Description,
		ContactEmail: event.ContactEmail,
		Status:       string(event.Status),
		SubmittedBy:  event.SubmittedBy,
		CreatedAt:    event.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    event.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func MapBusinessItem(business entities.BusinessSubmission) httptransport.BusinessItem {
	return httptransport.BusinessItem{
		ID:             business.ID,
		OwnerUserID:    business.OwnerUserID,
		Name:           business.Name,
		Category:       string(business.Category),
		Description:    business.Description,
		Address:        business.Address,
		Phone:          business.Phone,
		Email:          business.Email,
		Website:        business.Website,
		Facebook:       business.Facebook,
		Instagram:      business.Instagram,
		ImageURL:       business.ImageURL,
		Status:         string(business.Status),
		SubmittedBy:    business.SubmittedBy,
		SubmitterEmail: business.SubmitterEmail,
		CreatedAt:      business.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      business.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// parseEventDate accepts full RFC 3339 timestamps and bare dates, matching
// what the submission form sends.
func parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
