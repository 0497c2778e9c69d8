package config_test

import (
	"errors"
	"testing"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/config"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"default_chain", "Base", "base"},
		{"languages", "ts, js, ts", "typescript,javascript"},
		{"class_name", "VaultSDK", "VaultSDK"},
		{"package_name", "@acme/vault", "@acme/vault"},
		{"package_version", "0.3.1", "0.3.1"},
		{"output_dir", "", "."},
		{"output_dir", "./sdks", "./sdks"},
		{"log_level", "DEBUG", "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg, _ := config.Load(t.TempDir())
			require.NoError(t, cfg.Set(tt.key, tt.value))
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetRejects(t *testing.T) {
	cfg, _ := config.Load(t.TempDir())

	assert.ErrorIs(t, cfg.Set("default_chain", "nowhere"), chain.ErrChainNotFound)
	assert.ErrorIs(t, cfg.Set("languages", "python"), sdkgen.ErrUnsupportedLanguage)
	assert.ErrorIs(t, cfg.Set("languages", " , "), sdkgen.ErrUnsupportedLanguage)
	assert.ErrorIs(t, cfg.Set("class_name", "1Bad"), sdkgen.ErrInvalidClassName)
	assert.ErrorIs(t, cfg.Set("class_name", "ABI"), sdkgen.ErrInvalidClassName)
	assert.ErrorIs(t, cfg.Set("class_name", "PublicClient"), sdkgen.ErrInvalidClassName)
	assert.Error(t, cfg.Set("package_name", " "))
	assert.ErrorIs(t, cfg.Set("package_name", "Evil\n```"), sdkgen.ErrInvalidPackageName)
	assert.Error(t, cfg.Set("log_level", "loud"))
	assert.ErrorIs(t, cfg.Set("color", "blue"), config.ErrUnknownKey)

	_, err := cfg.Get("color")
	assert.True(t, errors.Is(err, config.ErrUnknownKey))

	// rejected values leave the config untouched
	assert.Equal(t, "somnia-testnet", cfg.DefaultChain)
	assert.Equal(t, []string{"javascript"}, cfg.Languages)
}

func TestEveryKeyIsReadable(t *testing.T) {
	cfg, _ := config.Load(t.TempDir())
	for _, k := range config.Keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}
