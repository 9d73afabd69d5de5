package accountservice

import (
	"log/slog"

	httpadapter "harvest/contexts/identity/account-service/adapters/http"
	"harvest/contexts/identity/account-service/adapters/memory"
	"harvest/contexts/identity/account-service/application"
	"harvest/contexts/identity/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Verifier    ports.TokenVerifier
	Repository  ports.Repository
	Clock       ports.Clock
	Logger      *slog.Logger
	OwnerOpenID string
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Verifier:    deps.Verifier,
		Repo:        deps.Repository,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
		OwnerOpenID: deps.OwnerOpenID,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// Static tokens accepted by the in-memory module.
const (
	OwnerToken  = "owner-token"
	MemberToken = "member-token"
)

const ownerSubject = "owner-open-id"

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	verifier := memory.StaticVerifier{
		Identities: map[string]ports.Identity{
			OwnerToken: {
				SubjectID:   ownerSubject,
				Name:        "Site Owner",
				Email:       "owner@example.com",
				LoginMethod: "google",
			},
			MemberToken: {
				SubjectID:   "member-open-id",
				Name:        "Community Member",
				Email:       "member@example.com",
				LoginMethod: "email",
			},
		},
	}
	module := NewModule(Dependencies{
		Verifier:    verifier,
		Repository:  store,
		Clock:       store,
		Logger:      logger,
		OwnerOpenID: ownerSubject,
	})
	module.Store = store
	return module
}
