package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Hostname: "localhost",
			Port:     8080,
		},
		Database: DatabaseConfig{
			Type:     "mysql",
			Hostname: "localhost",
			Port:     3306,
			User:     "consenthub",
			Password: "consenthub",
			Database: "CONSENT_HUB_DB",
		},
		Auth: AuthConfig{
			TokenSecret: "secret",
			TokenTTL:    time.Hour,
			BcryptCost:  10,
		},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfig_RejectsBadPort(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Port = 0
	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_RequiresTokenSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.Auth.TokenSecret = ""
	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_RequiresDatabaseHostname(t *testing.T) {
	cfg := validTestConfig()
	cfg.Database.Hostname = ""
	assert.Error(t, validateConfig(cfg))
}

func TestGetDSN(t *testing.T) {
	cfg := validTestConfig()
	dsn := cfg.Database.GetDSN()

	assert.Contains(t, dsn, "consenthub:consenthub@tcp(localhost:3306)/CONSENT_HUB_DB")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestGlobalConfig(t *testing.T) {
	cfg := validTestConfig()
	SetGlobal(cfg)

	got := Get()
	require.NotNil(t, got)
	assert.Equal(t, cfg.Auth.TokenSecret, got.Auth.TokenSecret)
}
