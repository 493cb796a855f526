package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PORT", "3000")
	t.Setenv("DB_USER", "donations")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "donations")
	t.Setenv("REDIS_DB", "2")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("IMPACT_RATIO", "")
	t.Setenv("DEFAULT_LANG", "")
	t.Setenv("MAIL_FROM", "")
	t.Setenv("IS_PROD", "")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 587, cfg.SMTPPort, "submission port default")
	assert.Equal(t, DefaultImpactRatio, cfg.ImpactRatio)
	assert.Equal(t, "en", cfg.DefaultLang)
	assert.Equal(t, "no-reply@shieldofathena.org", cfg.MailFrom)
	assert.False(t, cfg.IsProd)
	assert.False(t, cfg.SMTPConfigured())
}

func TestLoadConfigSMTP(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASS", "hunter2")

	cfg := LoadConfig()
	assert.True(t, cfg.SMTPConfigured())
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoadConfigImpactRatio(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("IMPACT_RATIO", "50")
	cfg := LoadConfig()
	assert.Equal(t, 50.0, cfg.ImpactRatio)

	// A nonsense ratio falls back to the default
	t.Setenv("IMPACT_RATIO", "-3")
	cfg = LoadConfig()
	assert.Equal(t, DefaultImpactRatio, cfg.ImpactRatio)
}

func TestDSN(t *testing.T) {
	setBaseEnv(t)
	cfg := LoadConfig()
	assert.Equal(t, "donations:secret@tcp(127.0.0.1:3306)/donations?parseTime=true", cfg.DSN())
}
