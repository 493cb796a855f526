package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort     string  // Application port
	DBUser      string  // Database user
	DBPassword  string  // Database password
	DBHost      string  // Database host
	DBPort      string  // Database port
	DBName      string  // Database name
	JWTSecret   string  // JWT secret key
	RedisAddr   string  // Redis server address
	RedisPass   string  // Redis password
	RedisDB     int     // Redis database number
	SMTPHost    string  // SMTP server host (empty => preview transport)
	SMTPPort    int     // SMTP server port
	SMTPUser    string  // SMTP username
	SMTPPass    string  // SMTP password
	MailFrom    string  // From address for receipt emails
	ImpactRatio float64 // Currency units per impact unit
	DefaultLang string  // Fallback language for receipts
	IsProd      bool    // Is production environment
}

// DefaultImpactRatio is the currency amount that counts as one life touched
// when IMPACT_RATIO is not configured.
const DefaultImpactRatio = 25.0

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if smtpPort == 0 {
		smtpPort = 587 // Standard submission port
	}
	impactRatio, _ := strconv.ParseFloat(os.Getenv("IMPACT_RATIO"), 64)
	if impactRatio <= 0 {
		impactRatio = DefaultImpactRatio // Fall back to the documented default
	}
	defaultLang := os.Getenv("DEFAULT_LANG")
	if defaultLang == "" {
		defaultLang = "en" // Baseline language for receipts
	}
	mailFrom := os.Getenv("MAIL_FROM")
	if mailFrom == "" {
		mailFrom = "no-reply@shieldofathena.org" // Default sender address
	}
	return &Config{
		AppPort:     os.Getenv("APP_PORT"),          // Application port
		DBUser:      os.Getenv("DB_USER"),           // Database user
		DBPassword:  os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:      os.Getenv("DB_HOST"),           // Database host
		DBPort:      os.Getenv("DB_PORT"),           // Database port
		DBName:      os.Getenv("DB_NAME"),           // Database name
		JWTSecret:   os.Getenv("JWT_SECRET"),        // JWT secret key
		RedisAddr:   os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:   os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:     redisDB,                        // Redis database number
		SMTPHost:    os.Getenv("SMTP_HOST"),         // SMTP server host
		SMTPPort:    smtpPort,                       // SMTP server port
		SMTPUser:    os.Getenv("SMTP_USER"),         // SMTP username
		SMTPPass:    os.Getenv("SMTP_PASS"),         // SMTP password
		MailFrom:    mailFrom,                       // From address
		ImpactRatio: impactRatio,                    // Currency per impact unit
		DefaultLang: defaultLang,                    // Fallback language
		IsProd:      os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// SMTPConfigured reports whether a real SMTP transport can be built
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" // Host and user are the minimum
}

// DSN assembles the MySQL Data Source Name from the config
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
