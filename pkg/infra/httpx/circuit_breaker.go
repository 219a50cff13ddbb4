package httpx

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// ErrBreakerOpen is returned when a call is refused without reaching the upstream.
var ErrBreakerOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Execute(fn func() error) error
	State() string
}

type BreakerSettings struct {
	Name        string
	Timeout     time.Duration
	MaxFailures uint32
	Logger      *logrus.Logger
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(s BreakerSettings) CircuitBreaker {
	maxFailures := s.MaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}
	settings := gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	if s.Logger != nil {
		logger := s.Logger
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		}
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (res interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()
		return nil, fn()
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), ErrBreakerOpen)
	}
	return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
}

func (g *circuitBreakerWrapper) State() string {
	return g.breaker.State().String()
}
