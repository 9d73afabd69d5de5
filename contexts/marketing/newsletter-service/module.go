package newsletterservice

import (
	"log/slog"

	httpadapter "harvest/contexts/marketing/newsletter-service/adapters/http"
	"harvest/contexts/marketing/newsletter-service/adapters/memory"
	"harvest/contexts/marketing/newsletter-service/application"
	"harvest/contexts/marketing/newsletter-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Client  *memory.Client
}

type Dependencies struct {
	Client ports.ContactClient
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Client: deps.Client,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	client := memory.NewClient()
	module := NewModule(Dependencies{
		Client: client,
		Logger: logger,
	})
	module.Client = client
	return module
}
