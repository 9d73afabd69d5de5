package httpadapter

import (
	"context"
	"log/slog"

	"harvest/contexts/marketing/newsletter-service/application"
	httptransport "harvest/contexts/marketing/newsletter-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SubscribeHandler(ctx context.Context, req httptransport.SubscribeRequest) (httptransport.SubscribeResponse, error) {
	result, err := h.Service.Subscribe(ctx, application.SubscribeInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Source:    req.Source,
		Interests: req.Interests,
	})
	if err != nil {
		return httptransport.SubscribeResponse{}, err
	}
	return httptransport.SubscribeResponse{
		Success: result.Success,
		Message: result.Message,
	}, nil
}
