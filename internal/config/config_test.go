package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "doctors_portal", cfg.MongoDatabase)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "Doctors Portal", cfg.EmailFromName)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	// Set-but-empty must fail the same way as absent.
	tests := []struct {
		name     string
		mongoURI string
		secret   string
	}{
		{"both empty", "", ""},
		{"empty mongo uri", "", "test-secret"},
		{"empty jwt secret", "mongodb://localhost:27017", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MONGO_URI", tt.mongoURI)
			t.Setenv("JWT_SECRET", tt.secret)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
