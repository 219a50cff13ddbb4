package recaptcha

import (
	"strings"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/sirupsen/logrus"
)

type FactoryConfig struct {
	AllowedHostnames []string
	ResponseTTL      time.Duration
}

type factory struct {
	client           Client
	store            ResponseStore
	allowedHostnames map[string]struct{}
	responseTTL      time.Duration
	logger           *logrus.Logger
}

func NewFactory(cfg FactoryConfig, client Client, store ResponseStore, logger *logrus.Logger) verification.Factory {
	hosts := make(map[string]struct{}, len(cfg.AllowedHostnames))
	for _, h := range cfg.AllowedHostnames {
		if h = strings.TrimSpace(strings.ToLower(h)); h != "" {
			hosts[h] = struct{}{}
		}
	}
	return &factory{
		client:           client,
		store:            store,
		allowedHostnames: hosts,
		responseTTL:      cfg.ResponseTTL,
		logger:           logger,
	}
}

func (f *factory) NewField(sessionID, name, title string) verification.Field {
	return &Field{
		sessionID:        sessionID,
		name:             name,
		title:            title,
		threshold:        DefaultThreshold,
		template:         DefaultTemplate,
		holderTemplate:   DefaultHolderTemplate,
		client:           f.client,
		store:            f.store,
		allowedHostnames: f.allowedHostnames,
		responseTTL:      f.responseTTL,
		logger:           f.logger,
	}
}
