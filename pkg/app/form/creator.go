package form

import (
	"context"
	"strings"

	"github.com/NeuralTrust/FormGuard/pkg/domain"
	domainForm "github.com/NeuralTrust/FormGuard/pkg/domain/form"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=form_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, title, urlSegment string) (*domainForm.Form, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainForm.Repository
}

func NewCreator(logger *logrus.Logger, repo domainForm.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
	}
}

// Create stores a new form. The URL segment defaults to one derived from the
// title.
func (c *creator) Create(ctx context.Context, title, urlSegment string) (*domainForm.Form, error) {
	title = strings.TrimSpace(title)
	if strings.TrimSpace(urlSegment) == "" {
		urlSegment = title
	}
	segment := domainForm.FormatURLSegment(urlSegment)
	if segment == "" {
		return nil, domain.ErrURLSegmentRequired
	}

	entity := &domainForm.Form{
		Title:      title,
		URLSegment: segment,
	}
	if err := c.repo.Save(ctx, entity); err != nil {
		c.logger.WithError(err).WithField("url_segment", segment).Error("failed to create form")
		return nil, err
	}
	c.logger.WithFields(logrus.Fields{
		"form_id":     entity.ID,
		"url_segment": entity.URLSegment,
	}).Info("form created")
	return entity, nil
}
