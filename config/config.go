package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// SMTPConfig holds settings for the outbound SMTP relay.
type SMTPConfig struct {
	Host               string
	Port               int
	User               string
	Password           string
	InsecureSkipVerify bool
}

// SESConfig holds settings for the AWS SES mail provider.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// MailConfig selects and configures the mail provider and the fixed
// destination mailboxes the handlers route to.
type MailConfig struct {
	Provider     string // "smtp" (default), "ses", or "noop"
	SMTP         SMTPConfig
	SES          SESConfig
	OwnerEmail   string
	SalesAddress string
	InfoAddress  string
}

// Config holds all configuration for the application.
type Config struct {
	Environment    string
	Port           string
	AllowedOrigins []string
	Mail           MailConfig
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only, so a
	// missing .env file is not an error there.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	ownerEmail := os.Getenv("OWNER_EMAIL")
	smtpUser := os.Getenv("SMTP_USER")
	if smtpUser == "" {
		smtpUser = ownerEmail
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnv("PORT", "3001"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		Mail: MailConfig{
			Provider: getEnv("MAIL_PROVIDER", "smtp"),
			SMTP: SMTPConfig{
				Host:               getEnv("SMTP_HOST", "smtp.hostinger.com"),
				Port:               getEnvInt("SMTP_PORT", 465),
				User:               smtpUser,
				Password:           os.Getenv("SMTP_PASSWORD"),
				InsecureSkipVerify: getEnvBool("SMTP_INSECURE_SKIP_VERIFY", true),
			},
			SES: SESConfig{
				Region:          getEnv("SES_REGION", "us-east-1"),
				AccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
			},
			OwnerEmail:   ownerEmail,
			SalesAddress: getEnv("SALES_EMAIL", "sale@asianimportexport.com"),
			InfoAddress:  getEnv("INFO_EMAIL", "info@asianimportexport.com"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using %d", v, key, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using %t", v, key, fallback)
		return fallback
	}
	return b
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
