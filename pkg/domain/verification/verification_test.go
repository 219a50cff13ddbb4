package verification_test

import (
	"testing"

	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/stretchr/testify/assert"
)

func TestResponse_WithoutToken(t *testing.T) {
	resp := verification.Response{
		"token":    "secret-token",
		"score":    0.9,
		"action":   "contact/submit",
		"hostname": "example.com",
	}

	out := resp.WithoutToken()

	assert.NotContains(t, out, verification.TokenKey)
	assert.Equal(t, 0.9, out["score"])
	assert.Equal(t, "contact/submit", out["action"])
	assert.Equal(t, "example.com", out["hostname"])
	assert.Contains(t, resp, verification.TokenKey, "source response must not be mutated")
}
