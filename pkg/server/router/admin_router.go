package router

import (
	"errors"

	handlers "github.com/NeuralTrust/FormGuard/pkg/handlers/http"
	"github.com/NeuralTrust/FormGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	docsURL             string
}

func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	docsURL string,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		docsURL:             docsURL,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil || h.CreateFormHandler == nil {
		return ErrInvalidHandlerTransport
	}

	if r.middlewareTransport != nil {
		if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
			router.Use(mws...)
		}
	}

	router.Static("/swagger.json", "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.docsURL,
	}))

	router.Get("/version", h.GetVersionHandler.Handle)
	router.Get("/health", h.HealthHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Get("/field-types", h.ListFieldTypesHandler.Handle)

		forms := v1.Group("/forms")
		{
			forms.Post("", h.CreateFormHandler.Handle)
			forms.Get("/:form_id", h.GetFormHandler.Handle)

			fields := forms.Group("/:form_id/fields")
			{
				fields.Post("/recaptcha-v3", h.CreateRecaptchaFieldHandler.Handle)
				fields.Get("/:field_id", h.GetFieldHandler.Handle)
				fields.Put("/:field_id", h.UpdateFieldHandler.Handle)
				fields.Delete("/:field_id", h.DeleteFieldHandler.Handle)
				fields.Get("/:field_id/cms-fields", h.GetCMSFieldsHandler.Handle)
			}
		}
	}
	return nil
}
