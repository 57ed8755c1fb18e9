package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"museum-api/internal/config"
)

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		driver   string
		wantName string
		wantErr  bool
	}{
		{driver: config.DriverMySQL, wantName: "mysql"},
		{driver: config.DriverPostgres, wantName: "postgres"},
		{driver: "sqlite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := dialectorFor(config.DatabaseConfig{Driver: tt.driver, URL: "dsn"})
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported database driver")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}
