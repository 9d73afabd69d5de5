package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"harvest/contexts/identity/account-service/application"
	"harvest/contexts/identity/account-service/ports"
	httptransport "harvest/contexts/identity/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) MeHandler(_ context.Context, user *ports.User) httptransport.MeResponse {
	return httptransport.MeResponse{User: MapUserItem(user)}
}

func (h Handler) LogoutHandler(ctx context.Context, user *ports.User) httptransport.LogoutResponse {
	return httptransport.LogoutResponse{Success: h.Service.Logout(ctx, user)}
}

// MapUserItem converts a resolved user to its wire shape. Nil stays nil so
// anonymous callers serialize as a null user.
func MapUserItem(user *ports.User) *httptransport.UserItem {
	if user == nil {
		return nil
	}
	return &httptransport.UserItem{
		ID:           user.ID,
		OpenID:       user.OpenID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         user.Role,
		LastSignedIn: user.LastSignedIn.UTC().Format(time.RFC3339),
		CreatedAt:    user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
