package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Form
	CreateFormHandler Handler
	GetFormHandler    Handler

	// Field
	CreateRecaptchaFieldHandler Handler
	GetFieldHandler             Handler
	UpdateFieldHandler          Handler
	DeleteFieldHandler          Handler
	GetCMSFieldsHandler         Handler
	ListFieldTypesHandler       Handler

	// System
	GetVersionHandler Handler
	HealthHandler     Handler

	// Public
	GetRuntimeFieldHandler Handler
	VerifyTokenHandler     Handler
	SubmitFormHandler      Handler
}
