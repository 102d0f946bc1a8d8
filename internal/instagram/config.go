package instagram

import (
	"fmt"
	"strings"
	"time"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix    = "IGPOST"
	envSessionID = "IGPOST_SESSION_ID"
	envCSRFToken = "IGPOST_CSRF_TOKEN"

	providerName = "instagram"
)

// Config captures the session and transport settings for the platform API.
// Session cookies are obtained out of band; this package never logs in.
type Config struct {
	BaseURL      string        `envconfig:"BASE_URL" default:"https://i.instagram.com"`
	SessionID    string        `envconfig:"SESSION_ID"`
	CSRFToken    string        `envconfig:"CSRF_TOKEN"`
	UserAgent    string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"`
	AppID        string        `envconfig:"APP_ID" default:"936619743392459"`
	ASBDID       string        `envconfig:"ASBD_ID" default:"198387"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"3"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"10s"`
}

// LoadConfig reads IGPOST_* environment variables and reports missing credentials.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading %s config: %w", providerName, err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.SessionID = strings.TrimSpace(cfg.SessionID)
	cfg.CSRFToken = strings.TrimSpace(cfg.CSRFToken)

	var missing []string
	if cfg.SessionID == "" {
		missing = append(missing, envSessionID)
	}
	if cfg.CSRFToken == "" {
		missing = append(missing, envCSRFToken)
	}
	if len(missing) > 0 {
		return Config{}, igpost.MissingEnvError{Provider: providerName, Variables: missing}
	}

	return cfg, nil
}
