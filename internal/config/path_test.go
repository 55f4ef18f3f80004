package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("FRAUDSCOPE_TEST_DIR", "/opt/fraudscope")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain path untouched", "/etc/fraudscope.yaml", "/etc/fraudscope.yaml"},
		{"tilde prefix", "~/fraudscope.yaml", filepath.Join(home, "fraudscope.yaml")},
		{"bare tilde", "~", home},
		{"env var", "$FRAUDSCOPE_TEST_DIR/config.yaml", "/opt/fraudscope/config.yaml"},
		{"tilde mid-path untouched", "/tmp/~foo", "/tmp/~foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
