package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "policycore/pkg/domain-errors"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.MaxUnits)
		assert.Equal(t, "CS101", cfg.RequiredCourse)
		assert.Equal(t, "credit_card", cfg.PaymentMethod)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("POLICY_MAX_UNITS", "20")
		t.Setenv("POLICY_REQUIRED_COURSE", "MA101")
		t.Setenv("POLICY_LOG_FORMAT", "json")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.MaxUnits)
		assert.Equal(t, "MA101", cfg.RequiredCourse)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("POLICY_MAX_UNITS", "many")
		_, err := FromEnv()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("blank required course", func(t *testing.T) {
		t.Setenv("POLICY_REQUIRED_COURSE", "   ")
		_, err := FromEnv()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("non-positive limit", func(t *testing.T) {
		t.Setenv("POLICY_MAX_UNITS", "0")
		_, err := FromEnv()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
