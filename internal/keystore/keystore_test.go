package keystore

import (
	"errors"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplorerKeyNoneStored(t *testing.T) {
	t.Setenv(EnvExplorerKey, "")
	k := New(NewMemory())

	got, err := k.ExplorerKey("somnia-testnet")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExplorerKeyPrecedence(t *testing.T) {
	t.Setenv(EnvExplorerKey, "")
	k := New(NewMemory())

	require.NoError(t, k.SetExplorerKey("", "GLOBAL"))
	got, _ := k.ExplorerKey("somnia-testnet")
	assert.Equal(t, "GLOBAL", got, "global key applies to every chain")

	require.NoError(t, k.SetExplorerKey("Somnia-Testnet", " CHAIN "))
	got, _ = k.ExplorerKey("somnia-testnet")
	assert.Equal(t, "CHAIN", got, "chain key overrides the global key")

	got, _ = k.ExplorerKey("base")
	assert.Equal(t, "GLOBAL", got)

	got, _ = k.ExplorerKey("")
	assert.Equal(t, "GLOBAL", got)

	t.Setenv(EnvExplorerKey, "ENV")
	got, _ = k.ExplorerKey("somnia-testnet")
	assert.Equal(t, "ENV", got, "environment overrides stored keys")
}

func TestSetExplorerKeyRejectsEmpty(t *testing.T) {
	assert.Error(t, New(NewMemory()).SetExplorerKey("base", "  "))
}

func TestDeleteExplorerKey(t *testing.T) {
	t.Setenv(EnvExplorerKey, "")
	k := New(NewMemory())

	require.NoError(t, k.SetExplorerKey("base", "K"))
	require.NoError(t, k.DeleteExplorerKey("base"))
	require.NoError(t, k.DeleteExplorerKey("base"), "deleting twice is fine")

	got, err := k.ExplorerKey("base")
	require.NoError(t, err)
	assert.Empty(t, got)
}

type failingStore struct{ Memory }

func (*failingStore) Get(string) (string, error) { return "", errors.New("locked") }

func TestExplorerKeyStoreError(t *testing.T) {
	t.Setenv(EnvExplorerKey, "")
	_, err := New(&failingStore{}).ExplorerKey("base")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("x")
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)

	require.NoError(t, m.Set("x", "1"))
	v, err := m.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, m.Delete("x"))
	assert.ErrorIs(t, m.Delete("x"), keyring.ErrKeyNotFound)
}

func TestExplorerRef(t *testing.T) {
	assert.Equal(t, "w3sdk.explorer", explorerRef(""))
	assert.Equal(t, "w3sdk.explorer.base", explorerRef("BASE"))
}
