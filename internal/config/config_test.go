package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DATABASE_URL", "UPLOAD_DIR", "JWT_SECRET", "ACCESS_TOKEN_EXPIRE_MINUTES", "REDIS_ADDR", "RESET_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "assignments.db", cfg.DatabaseURL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.ResetDB)
}
