package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "movie_reviews.xlsx", cfg.Store.File)
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, 120, cfg.Session.TTLMinutes)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDEBUG=true\nSTORE_FILE=reviews.csv\nSESSION_TTL_MINUTES=5\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	cfg, err := LoadConfigFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "reviews.csv", cfg.Store.File)
	assert.Equal(t, 5, cfg.Session.TTLMinutes)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\n"), 0o644))
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfigFrom(envFile)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.App.Port)
}

func TestLoadConfigRejectsUnknownDrivers(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "store driver", key: "STORE_DRIVER", val: "mongo"},
		{name: "session driver", key: "SESSION_DRIVER", val: "cookie"},
		{name: "postgres without database", key: "STORE_DRIVER", val: StoreDriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfigFrom("")
			assert.Error(t, err)
		})
	}
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"Review": "This field is required",
		"Movie":  "This field is required",
	})
	assert.Equal(t, "Movie: This field is required; Review: This field is required", got)
}
