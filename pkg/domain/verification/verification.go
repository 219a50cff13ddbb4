package verification

import (
	"context"
	"errors"
)

// TokenKey is the one-time token entry of a Response. It must never be persisted.
const TokenKey = "token"

var (
	ErrResponseNotFound   = errors.New("no verification response recorded for this session")
	ErrVerificationFailed = errors.New("verification failed")
)

// Response is the verdict returned by the verification provider: at least
// token, score, action and hostname.
type Response map[string]interface{}

// WithoutToken returns a copy of r without TokenKey.
func (r Response) WithoutToken() Response {
	out := make(Response, len(r))
	for k, v := range r {
		if k == TokenKey {
			continue
		}
		out[k] = v
	}
	return out
}

// Field is a transient, verification-capable form field built per request.
//
//go:generate mockery --name=Field --dir=. --output=./mocks --filename=field_mock.go --case=underscore --with-expecter
type Field interface {
	Name() string
	Title() string
	Score() float64
	SetScore(threshold float64)
	ExecuteAction() string
	ActionLocked() bool
	SetExecuteAction(action string, lock bool)
	Template() string
	SetTemplate(name string)
	FieldHolderTemplate() string
	SetFieldHolderTemplate(name string)
	Verify(ctx context.Context, token, remoteIP string) (Response, error)
	ResponseFromSession(ctx context.Context) (Response, error)
	// ClearResponseFromSession forgets the recorded response so it backs at
	// most one submission.
	ClearResponseFromSession(ctx context.Context) error
}

//go:generate mockery --name=Factory --dir=. --output=./mocks --filename=factory_mock.go --case=underscore --with-expecter
type Factory interface {
	NewField(sessionID, name, title string) Field
}
