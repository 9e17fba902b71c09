// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"rpc_list": ["https://api.mainnet-beta.solana.com"],
		"commitment": "finalized",
		"skip_preflight": true,
		"wallet_key_path": "/tmp/key"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://api.mainnet-beta.solana.com"}, cfg.RPCList)
	assert.Equal(t, "finalized", cfg.Commitment)
	assert.True(t, cfg.SkipPreflight)
	assert.False(t, cfg.Broadcast)
	assert.Equal(t, "/tmp/key", cfg.WalletKeyPath)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{"rpc_list": ["http://localhost:8899"]}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCommitment, cfg.Commitment)
	assert.False(t, cfg.SkipPreflight)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		errMsg   string
	}{
		{
			name:     "empty rpc list",
			contents: `{"rpc_list": []}`,
			errMsg:   "rpc_list is empty",
		},
		{
			name:     "bad endpoint scheme",
			contents: `{"rpc_list": ["ws://localhost:8900"]}`,
			errMsg:   "invalid RPC endpoint",
		},
		{
			name:     "bad commitment",
			contents: `{"rpc_list": ["http://localhost:8899"], "commitment": "maybe"}`,
			errMsg:   "invalid commitment level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
