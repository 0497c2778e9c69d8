package chain

import (
	"testing"

	"github.com/Mohsinsiddi/w3sdk/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefault(t *testing.T) {
	r := NewRegistry()
	c := r.Default()
	require.NotNil(t, c)
	assert.Equal(t, "somnia-testnet", c.Name)
	assert.Equal(t, int64(50311), c.ChainID)
	assert.Equal(t, "somniaTestnet", c.ViemImport)
	assert.Equal(t, "https://testnet-rpc.somnia.network", c.RPC())
	assert.Equal(t, "https://shannon-explorer.somnia.network/api", c.ExplorerAPI)
	assert.True(t, c.Testnet)
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	c, err := r.GetByName(" Base-Sepolia ")
	require.NoError(t, err)
	assert.Equal(t, int64(84532), c.ChainID)

	c, err = r.GetByChainID(1)
	require.NoError(t, err)
	assert.Equal(t, "ethereum", c.Name)
	assert.Equal(t, "mainnet", c.ViemImport)

	_, err = r.GetByName("nope")
	assert.ErrorIs(t, err, ErrChainNotFound)
	_, err = r.GetByChainID(999999)
	assert.ErrorIs(t, err, ErrChainNotFound)
}

func TestRegistryEntriesAreUsable(t *testing.T) {
	r := NewRegistry()
	ids := map[int64]string{}
	for _, c := range r.All() {
		assert.True(t, contract.IsIdentifier(c.ViemImport), "%s: viem import %q", c.Name, c.ViemImport)
		assert.NotEmpty(t, c.RPCs, c.Name)
		assert.NotZero(t, c.ChainID, c.Name)
		if prev, dup := ids[c.ChainID]; dup {
			t.Errorf("chain id %d used by %s and %s", c.ChainID, prev, c.Name)
		}
		ids[c.ChainID] = c.Name
	}
	assert.Len(t, r.Names(), len(r.All()))
	assert.IsIncreasing(t, r.Names())
}

func TestAddressURL(t *testing.T) {
	c, _ := NewRegistry().GetByName("somnia-testnet")
	assert.Equal(t, "https://shannon-explorer.somnia.network/address/0xabc", c.AddressURL("0xabc"))
	assert.Empty(t, (&Chain{}).AddressURL("0xabc"))
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress(" 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed ")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	for _, bad := range []string{"", "0x123", "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0xZZaeb6053f3e94c9b9a09f33669435e7ef1beaed"} {
		_, err := NormalizeAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}
