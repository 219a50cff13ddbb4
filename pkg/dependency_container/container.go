package dependency_container

import (
	"context"
	"fmt"

	appField "github.com/NeuralTrust/FormGuard/pkg/app/field"
	appForm "github.com/NeuralTrust/FormGuard/pkg/app/form"
	appSubmission "github.com/NeuralTrust/FormGuard/pkg/app/submission"
	"github.com/NeuralTrust/FormGuard/pkg/config"
	domainField "github.com/NeuralTrust/FormGuard/pkg/domain/field"
	domainForm "github.com/NeuralTrust/FormGuard/pkg/domain/form"
	domainSubmission "github.com/NeuralTrust/FormGuard/pkg/domain/submission"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/fields/recaptchav3"
	handlers "github.com/NeuralTrust/FormGuard/pkg/handlers/http"
	"github.com/NeuralTrust/FormGuard/pkg/i18n"
	"github.com/NeuralTrust/FormGuard/pkg/infra/cache"
	"github.com/NeuralTrust/FormGuard/pkg/infra/database"
	"github.com/NeuralTrust/FormGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/FormGuard/pkg/infra/jwt"
	"github.com/NeuralTrust/FormGuard/pkg/infra/recaptcha"
	"github.com/NeuralTrust/FormGuard/pkg/infra/repository"
	"github.com/NeuralTrust/FormGuard/pkg/server/middleware"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Cache                 cache.Client
	Registry              *domainField.Registry
	Translator            i18n.Translator
	HandlerTransport      *handlers.HandlerTransport
	AdminMiddlewares      *middleware.Transport
	PublicMiddlewares     *middleware.Transport
	JWTManager            jwt.Manager
	SiteVerifyBreaker     httpx.CircuitBreaker
	VerificationFactory   verification.Factory
	FormRepository        domainForm.Repository
	FieldRepository       domainField.Repository
	DisplayRuleRepository domainField.DisplayRuleRepository
	SubmissionRepository  domainSubmission.Repository
	FieldSaver            appField.Saver
	RuntimeBuilder        appField.RuntimeBuilder
	SubmissionRecorder    appSubmission.Recorder
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	// Cache overrides the redis client built from Cfg.Redis.
	Cache cache.Client
	// Extensions adjust every runtime field before it is served.
	Extensions []domainField.Extension
}

func NewContainer(di ContainerDI) (*Container, error) {
	cacheInstance := di.Cache
	if cacheInstance == nil {
		var err error
		cacheInstance, err = cache.NewClient(cache.Config{
			Host:     di.Cfg.Redis.Host,
			Port:     di.Cfg.Redis.Port,
			Password: di.Cfg.Redis.Password,
			DB:       di.Cfg.Redis.DB,
			TLS:      di.Cfg.Redis.TLS,
		}, di.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cache: %v", err)
		}
	}

	translator, err := newTranslator(di.Cfg.I18n, di.Logger)
	if err != nil {
		return nil, err
	}

	// field types
	registry := domainField.NewRegistry()
	if err := recaptchav3.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register field types: %w", err)
	}

	// verification provider
	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(di.Cfg.Recaptcha.Timeout),
		httpx.WithMaxConnsPerHost(512),
	)
	breaker := httpx.NewCircuitBreaker(httpx.BreakerSettings{
		Name:        "siteverify",
		Timeout:     di.Cfg.Recaptcha.BreakerTimeout,
		MaxFailures: di.Cfg.Recaptcha.BreakerMaxFailures,
		Logger:      di.Logger,
	})
	siteVerifyClient := recaptcha.NewClient(recaptcha.ClientConfig{
		VerifyURL: di.Cfg.Recaptcha.VerifyURL,
		SecretKey: di.Cfg.Recaptcha.SecretKey,
		Timeout:   di.Cfg.Recaptcha.Timeout,
	}, httpClient, breaker, di.Logger)
	responseStore := recaptcha.NewResponseStore(cacheInstance)
	verificationFactory := recaptcha.NewFactory(recaptcha.FactoryConfig{
		AllowedHostnames: di.Cfg.Recaptcha.AllowedHostnames,
		ResponseTTL:      di.Cfg.Recaptcha.ResponseTTL,
	}, siteVerifyClient, responseStore, di.Logger)

	// repository
	formRepository := repository.NewFormRepository(di.DB.DB)
	fieldRepository := repository.NewFieldRepository(di.DB.DB, registry)
	displayRuleRepository := repository.NewDisplayRuleRepository(di.DB.DB)
	submissionRepository := repository.NewSubmissionRepository(di.DB.DB)

	// service
	formCreator := appForm.NewCreator(di.Logger, formRepository)
	fieldSaver := appField.NewSaver(di.Logger, registry, formRepository, fieldRepository, displayRuleRepository, translator)
	fieldDescriber := appField.NewDescriber(registry, fieldRepository, translator)
	runtimeBuilder := appField.NewRuntimeBuilder(di.Logger, formRepository, fieldRepository, verificationFactory, di.Extensions...)
	submissionRecorder := appSubmission.NewRecorder(di.Logger, formRepository, fieldRepository, submissionRepository, verificationFactory, appSubmission.RecorderConfig{
		AllowUnverified: di.Cfg.Recaptcha.AllowUnverifiedSubmissions,
	})

	// session
	jwtManager, err := jwt.NewJwtManager(di.Cfg.Session.SigningKey, di.Cfg.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session tokens: %w", err)
	}

	// middleware
	adminMiddlewares := middleware.NewTransport(
		middleware.NewMetricsMiddleware(di.Logger, "admin"),
	)
	publicMiddlewares := middleware.NewTransport(
		middleware.NewMetricsMiddleware(di.Logger, "public"),
		middleware.NewRateLimiterMiddleware(di.Logger, cacheInstance.RedisClient(), middleware.RateLimitConfig{
			Scope:  "public",
			Limit:  di.Cfg.RateLimit.Limit,
			Window: di.Cfg.RateLimit.Window,
		}, nil),
		middleware.NewSessionMiddleware(di.Logger, jwtManager, middleware.SessionConfig{
			CookieName: di.Cfg.Session.CookieName,
			TTL:        di.Cfg.Session.TTL,
			Secure:     di.Cfg.Session.Secure,
		}),
	)

	healthChecks := map[string]handlers.HealthCheck{
		"database": di.DB.Ping,
		"redis": func(ctx context.Context) error {
			return cacheInstance.RedisClient().Ping(ctx).Err()
		},
	}

	// Handler Transport
	handlerTransport := &handlers.HandlerTransport{
		// Form
		CreateFormHandler: handlers.NewCreateFormHandler(di.Logger, formCreator),
		GetFormHandler:    handlers.NewGetFormHandler(di.Logger, formRepository, fieldRepository),
		// Field
		CreateRecaptchaFieldHandler: handlers.NewCreateFieldHandler(di.Logger, fieldSaver, recaptchav3.FieldType),
		GetFieldHandler:             handlers.NewGetFieldHandler(di.Logger, fieldRepository),
		UpdateFieldHandler:          handlers.NewUpdateFieldHandler(di.Logger, fieldSaver),
		DeleteFieldHandler:          handlers.NewDeleteFieldHandler(di.Logger, fieldRepository),
		GetCMSFieldsHandler:         handlers.NewGetCMSFieldsHandler(di.Logger, fieldDescriber),
		ListFieldTypesHandler:       handlers.NewListFieldTypesHandler(di.Logger, registry),
		// System
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
		HealthHandler:     handlers.NewHealthHandler(di.Logger, healthChecks),
		// Public
		GetRuntimeFieldHandler: handlers.NewGetRuntimeFieldHandler(di.Logger, runtimeBuilder, di.Cfg.Recaptcha.SiteKey),
		VerifyTokenHandler:     handlers.NewVerifyTokenHandler(di.Logger, runtimeBuilder),
		SubmitFormHandler:      handlers.NewSubmitFormHandler(di.Logger, submissionRecorder),
	}

	return &Container{
		Cache:                 cacheInstance,
		Registry:              registry,
		Translator:            translator,
		HandlerTransport:      handlerTransport,
		AdminMiddlewares:      adminMiddlewares,
		PublicMiddlewares:     publicMiddlewares,
		JWTManager:            jwtManager,
		SiteVerifyBreaker:     breaker,
		VerificationFactory:   verificationFactory,
		FormRepository:        formRepository,
		FieldRepository:       fieldRepository,
		DisplayRuleRepository: displayRuleRepository,
		SubmissionRepository:  submissionRepository,
		FieldSaver:            fieldSaver,
		RuntimeBuilder:        runtimeBuilder,
		SubmissionRecorder:    submissionRecorder,
	}, nil
}

// newTranslator loads the configured catalog. Without one every label falls
// back to its English default.
func newTranslator(cfg config.I18nConfig, logger *logrus.Logger) (i18n.Translator, error) {
	if cfg.Catalog == "" {
		logger.Info("no translation catalog configured, using default labels")
		return i18n.Noop(), nil
	}
	catalog, err := i18n.LoadCatalogFile(cfg.Catalog, cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load translation catalog: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"catalog": cfg.Catalog,
		"locale":  catalog.Locale(),
	}).Info("translation catalog loaded")
	return catalog, nil
}
