package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAreGathered(t *testing.T) {
	before := testutil.ToFloat64(VerificationsTotal.WithLabelValues(ResultPassed))
	VerificationsTotal.WithLabelValues(ResultPassed).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(VerificationsTotal.WithLabelValues(ResultPassed)))

	FieldSavesTotal.WithLabelValues("recaptcha_v3").Inc()

	families, err := Gatherer().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "formguard_verifications_total")
	assert.Contains(t, names, "formguard_field_saves_total")
}

func TestInitialize_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Initialize(true)
		Initialize(true)
	})
	assert.True(t, Enabled)
	Initialize(false)
	assert.False(t, Enabled)
}
