package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Parse()
	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.False(t, cfg.Mail.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("SMTP_HOST", "smtp.internal")
	t.Setenv("JWT_EXPIRE", "30m")

	cfg, err := Parse()
	assert.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db.internal", cfg.DB.Postgres().Host)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, 30*time.Minute, cfg.JWTExpire)
}

func TestParse_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Parse()
		assert.ErrorContains(t, err, "parse env:")
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("BCRYPT_COST", "99")
		_, err := Parse()
		assert.ErrorContains(t, err, "BCRYPT_COST")
	})
}
