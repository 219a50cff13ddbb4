package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
)

//go:generate mockery --name=ResponseStore --dir=. --output=./mocks --filename=response_store_mock.go --case=underscore --with-expecter
type ResponseStore interface {
	Save(ctx context.Context, sessionID, fieldName string, response verification.Response, ttl time.Duration) error
	Get(ctx context.Context, sessionID, fieldName string) (verification.Response, error)
	Delete(ctx context.Context, sessionID, fieldName string) error
}

type redisResponseStore struct {
	cache cache.Client
}

func NewResponseStore(cache cache.Client) ResponseStore {
	return &redisResponseStore{cache: cache}
}

func responseKey(sessionID, fieldName string) string {
	return fmt.Sprintf(common.VerificationResponseKeyFmt, sessionID, fieldName)
}

func (s *redisResponseStore) Save(
	ctx context.Context,
	sessionID, fieldName string,
	response verification.Response,
	ttl time.Duration,
) error {
	raw, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal verification response: %w", err)
	}
	if ttl <= 0 {
		ttl = common.DefaultVerificationTTL
	}
	return s.cache.Set(ctx, responseKey(sessionID, fieldName), string(raw), ttl)
}

func (s *redisResponseStore) Get(ctx context.Context, sessionID, fieldName string) (verification.Response, error) {
	raw, err := s.cache.Get(ctx, responseKey(sessionID, fieldName))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, verification.ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to read verification response: %w", err)
	}

	var response verification.Response
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification response: %w", err)
	}
	return response, nil
}

func (s *redisResponseStore) Delete(ctx context.Context, sessionID, fieldName string) error {
	return s.cache.Delete(ctx, responseKey(sessionID, fieldName))
}
