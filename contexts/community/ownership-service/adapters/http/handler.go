package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"harvest/contexts/community/ownership-service/application"
	"harvest/contexts/community/ownership-service/ports"
	httptransport "harvest/contexts/community/ownership-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) MyBusinessHandler(ctx context.Context, actor ports.Actor) (httptransport.MyBusinessResponse, error) {
	profile, err := h.Service.MyBusiness(ctx, actor)
	if err != nil {
		return httptransport.MyBusinessResponse{}, err
	}
	if profile == nil {
		return httptransport.MyBusinessResponse{Business: nil}, nil
	}
	item := mapProfileItem(*profile)
	return httptransport.MyBusinessResponse{Business: &item}, nil
}

func (h Handler) UnclaimedHandler(ctx context.Context, actor ports.Actor) (httptransport.UnclaimedResponse, error) {
	items, err := h.Service.ListUnclaimed(ctx, actor)
	if err != nil {
		return httptransport.UnclaimedResponse{}, err
	}
	resp := httptransport.UnclaimedResponse{Businesses: make([]httptransport.BusinessProfileItem, 0, len(items))}
	for _, item := range items {
		resp.Businesses = append(resp.Businesses, mapProfileItem(item))
	}
	return resp, nil
}

func (h Handler) ClaimHandler(ctx context.Context, businessID int64, actor ports.Actor) (httptransport.ClaimResponse, error) {
	profile, err := h.Service.Claim(ctx, businessID, actor)
	if err != nil {
		return httptransport.ClaimResponse{}, err
	}
	return httptransport.ClaimResponse{
		Success:  true,
		Business: mapProfileItem(profile),
	}, nil
}

func (h Handler) UpdateProfileHandler(ctx context.Context, businessID int64, actor ports.Actor, req httptransport.UpdateProfileRequest) (httptransport.UpdateProfileResponse, error) {
	profile, err := h.Service.UpdateProfile(ctx, businessID, actor, ports.ProfileUpdate{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Facebook:    req.Facebook,
		Instagram:   req.Instagram,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return httptransport.UpdateProfileResponse{}, err
	}
	return httptransport.UpdateProfileResponse{
		Success:  true,
		Business: mapProfileItem(profile),
	}, nil
}

func mapProfileItem(profile ports.BusinessProfile) httptransport.BusinessProfileItem {
	return httptransport.BusinessProfileItem{
		ID:             profile.ID,
		OwnerUserID:    profile.OwnerUserID,
		Name:           profile.Name,
		Category:       profile.Category,
		Description:    profile.Description,
		Address:        profile.Address,
		Phone:          profile.Phone,
		Email:          profile.Email,
		Website:        profile.Website,
		Facebook:       profile.Facebook,
		Instagram:      profile.Instagram,
		ImageURL:       profile.ImageURL,
		Status:         profile.Status,
		SubmittedBy:    profile.SubmittedBy,
		SubmitterEmail: profile.SubmitterEmail,
		CreatedAt:      profile.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
