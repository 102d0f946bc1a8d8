package instagram_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/instagram"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reports missing credentials", func(t *testing.T) {
		t.Setenv("IGPOST_SESSION_ID", "")
		t.Setenv("IGPOST_CSRF_TOKEN", "")

		_, err := instagram.LoadConfig()

		var missing igpost.MissingEnvError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"IGPOST_SESSION_ID", "IGPOST_CSRF_TOKEN"}, missing.Variables)
		assert.Contains(t, err.Error(), "instagram credentials not configured")
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("IGPOST_SESSION_ID", " sess ")
		t.Setenv("IGPOST_CSRF_TOKEN", "csrf")
		t.Setenv("IGPOST_BASE_URL", "https://example.test/")

		cfg, err := instagram.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "sess", cfg.SessionID)
		assert.Equal(t, "https://example.test", cfg.BaseURL)
		assert.Equal(t, "936619743392459", cfg.AppID)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.RetryMax)
	})
}
