package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"harvest/contexts/community/moderation-service/application"
	"harvest/contexts/community/moderation-service/ports"
	httptransport "harvest/contexts/community/moderation-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PendingEventsHandler(ctx context.Context, actor ports.Actor) (httptransport.PendingEventsResponse, error) {
	rows, err := h.Service.PendingEvents(ctx, actor)
	if err != nil {
		return httptransport.PendingEventsResponse{}, err
	}
	resp := httptransport.PendingEventsResponse{Events: make([]httptransport.PendingEventItem, 0, len(rows))}
	for _, row := range rows {
		resp.Events = append(resp.Events, httptransport.PendingEventItem{
			ID:           row.ID,
			Title:        row.Title,
			Date:         row.Date.UTC().Format(time.RFC3339),
			Time:         row.Time,
			Location:     row.Location,
			Category:     row.Category,
			Description:  row.Description,
			ContactEmail: row.ContactEmail,
			Status:       row.Status,
			SubmittedBy:  row.SubmittedBy,
			CreatedAt:    row.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:    row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) PendingBusinessesHandler(ctx context.Context, actor ports.Actor) (httptransport.PendingBusinessesResponse, error) {
	rows, err := h.Service.PendingBusinesses(ctx, actor)
	if err != nil {
		return httptransport.PendingBusinessesResponse{}, err
	}
	resp := httptransport.PendingBusinessesResponse{Businesses: make([]httptransport.PendingBusinessItem, 0, len(rows))}
	for _, row := range rows {
		resp.Businesses = append(resp.Businesses, httptransport.PendingBusinessItem{
			ID:             row.ID,
			OwnerUserID:    row.OwnerUserID,
			Name:           row.Name,
			Category:       row.Category,
			Description:    row.Description,
			Address:        row.Address,
			Phone:          row.Phone,
			Email:          row.Email,
			Website:        row.Website,
			Facebook:       row.Facebook,
			Instagram:      row.Instagram,
			ImageURL:       row.ImageURL,
			Status:         row.Status,
			SubmittedBy:    row.SubmittedBy,
			SubmitterEmail: row.SubmitterEmail,
			CreatedAt:      row.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:      row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) UpdateEventStatusHandler(ctx context.Context, eventID int64, req httptransport.UpdateStatusRequest, actor ports.Actor) (httptransport.UpdateStatusResponse, error) {
	ok, err := h.Service.SetEventStatus(ctx, eventID, req.Status, actor)
	if err != nil {
		return httptransport.UpdateStatusResponse{}, err
	}
	return httptransport.UpdateStatusResponse{Success: ok}, nil
}

func (h Handler) UpdateBusinessStatusHandler(ctx context.Context, businessID int64, req httptransport.UpdateStatusRequest, actor ports.Actor) (httptransport.UpdateStatusResponse, error) {
	ok, err := h.Service.SetBusinessStatus(ctx, businessID, req.Status, actor)
	if err != nil {
		return httptransport.UpdateStatusResponse{}, err
	}
	return httptransport.UpdateStatusResponse{Success: ok}, nil
}
