package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventick/eventick-api/internal/config"
)

const testConfig = `api:
  environment: "test"
  base_url: "localhost:5000"
  port: "5000"
  allowed_cors_domains:
    - "http://localhost:5173"

gin:
  mode: "test"

postgres:
  host: ""
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "eventick"

payments:
  stripe_secret_key: ""
  enable_mock: true
  currency: "inr"
  reservation_ttl_minutes: 30
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := config.Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "5000", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.True(t, conf.Payments.EnableMock)
	assert.Equal(t, "inr", conf.Payments.Currency)
	assert.Equal(t, 30, conf.Payments.ReservationTTLMinutes)
	assert.False(t, conf.Payments.StripeConfigured())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("ENABLE_MOCK_PAYMENTS", "false")

	conf, err := config.Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.True(t, conf.Payments.StripeConfigured())
	assert.False(t, conf.Payments.EnableMock)
}

func TestStripeConfigured_RejectsMalformedKeys(t *testing.T) {
	conf := &config.PaymentsConfig{StripeSecretKey: "not-a-key"}
	assert.False(t, conf.StripeConfigured())
}
