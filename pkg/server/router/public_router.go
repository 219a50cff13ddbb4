package router

import (
	handlers "github.com/NeuralTrust/FormGuard/pkg/handlers/http"
	"github.com/NeuralTrust/FormGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
)

type publicRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

// NewPublicRouter mounts the visitor endpoints. The middleware transport must
// carry the session middleware.
func NewPublicRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &publicRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *publicRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil || h.GetRuntimeFieldHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Get("/health", h.HealthHandler.Handle)

	forms := router.Group("/forms/:url_segment")
	if r.middlewareTransport != nil {
		if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
			forms.Use(mws...)
		}
	}
	{
		forms.Get("/fields/:field_id", h.GetRuntimeFieldHandler.Handle)
		forms.Post("/fields/:field_id/verify", h.VerifyTokenHandler.Handle)
		forms.Post("/submissions", h.SubmitFormHandler.Handle)
	}
	return nil
}
