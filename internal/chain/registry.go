package chain

import (
	"errors"
	"sort"
	"strings"
)

// ErrChainNotFound is returned when a chain is not in the registry.
var ErrChainNotFound = errors.New("chain not found")

// DefaultChain is the registry slug used when none is configured.
const DefaultChain = "somnia-testnet"

// Chain holds the metadata a generated client and the explorer lookups need.
type Chain struct {
	Name           string   `json:"name"`
	DisplayName    string   `json:"display_name"`
	ChainID        int64    `json:"chain_id"`
	ViemImport     string   `json:"viem_import"` // export name in "viem/chains"
	NativeCurrency string   `json:"native_currency"`
	RPCs           []string `json:"rpcs"`
	Explorer       string   `json:"explorer"`
	// Etherscan-compatible API endpoint (getsourcecode, proxy/eth_getCode).
	ExplorerAPI string `json:"explorer_api,omitempty"`
	Testnet     bool   `json:"testnet"`
}

// Registry is the chain registry.
type Registry struct {
	chains []Chain
	byName map[string]*Chain
	byID   map[int64]*Chain
}

// NewRegistry returns the registry of every supported chain.
func NewRegistry() *Registry {
	chains := allChains()
	r := &Registry{
		chains: chains,
		byName: make(map[string]*Chain, len(chains)),
		byID:   make(map[int64]*Chain, len(chains)),
	}
	for i := range r.chains {
		c := &r.chains[i]
		r.byName[c.Name] = c
		r.byID[c.ChainID] = c
	}
	return r
}

// All returns every chain in the registry.
func (r *Registry) All() []Chain {
	return r.chains
}

// Names returns the sorted chain slugs.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.chains))
	for _, c := range r.chains {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// GetByName finds a chain by its slug name (e.g. "base", "somnia-testnet").
func (r *Registry) GetByName(name string) (*Chain, error) {
	c, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrChainNotFound
	}
	return c, nil
}

// GetByChainID finds a chain by its numeric chain ID.
func (r *Registry) GetByChainID(id int64) (*Chain, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrChainNotFound
	}
	return c, nil
}

// Default returns the default chain.
func (r *Registry) Default() *Chain {
	return r.byName[DefaultChain]
}

// RPC returns the preferred RPC endpoint, or "" when none is registered.
func (c *Chain) RPC() string {
	if len(c.RPCs) == 0 {
		return ""
	}
	return c.RPCs[0]
}

// AddressURL links to an address on the chain's explorer.
func (c *Chain) AddressURL(address string) string {
	if c.Explorer == "" {
		return ""
	}
	return strings.TrimRight(c.Explorer, "/") + "/address/" + address
}

// --- chain data ---

func allChains() []Chain {
	return []Chain{
		{
			Name: "somnia-testnet", DisplayName: "Somnia Shannon Testnet", ChainID: 50311,
			ViemImport: "somniaTestnet", NativeCurrency: "STT",
			RPCs:        []string{"https://testnet-rpc.somnia.network"},
			Explorer:    "https://shannon-explorer.somnia.network",
			ExplorerAPI: "https://shannon-explorer.somnia.network/api",
			Testnet:     true,
		},
		{
			Name: "somnia", DisplayName: "Somnia", ChainID: 5031,
			ViemImport: "somnia", NativeCurrency: "SOMI",
			RPCs:        []string{"https://api.infra.mainnet.somnia.network"},
			Explorer:    "https://explorer.somnia.network",
			ExplorerAPI: "https://explorer.somnia.network/api",
		},
		{
			Name: "ethereum", DisplayName: "Ethereum", ChainID: 1,
			ViemImport: "mainnet", NativeCurrency: "ETH",
			RPCs:        []string{"https://eth.llamarpc.com", "https://ethereum-rpc.publicnode.com"},
			Explorer:    "https://etherscan.io",
			ExplorerAPI: "https://eth.blockscout.com/api",
		},
		{
			Name: "sepolia", DisplayName: "Sepolia", ChainID: 11155111,
			ViemImport: "sepolia", NativeCurrency: "ETH",
			RPCs:        []string{"https://rpc.sepolia.org", "https://sepolia.gateway.tenderly.co"},
			Explorer:    "https://sepolia.etherscan.io",
			ExplorerAPI: "https://eth-sepolia.blockscout.com/api",
			Testnet:     true,
		},
		{
			Name: "base", DisplayName: "Base", ChainID: 8453,
			ViemImport: "base", NativeCurrency: "ETH",
			RPCs:        []string{"https://mainnet.base.org", "https://base.llamarpc.com"},
			Explorer:    "https://basescan.org",
			ExplorerAPI: "https://base.blockscout.com/api",
		},
		{
			Name: "base-sepolia", DisplayName: "Base Sepolia", ChainID: 84532,
			ViemImport: "baseSepolia", NativeCurrency: "ETH",
			RPCs:        []string{"https://sepolia.base.org"},
			Explorer:    "https://sepolia.basescan.org",
			ExplorerAPI: "https://base-sepolia.blockscout.com/api",
			Testnet:     true,
		},
		{
			Name: "polygon", DisplayName: "Polygon", ChainID: 137,
			ViemImport: "polygon", NativeCurrency: "POL",
			RPCs:        []string{"https://polygon-bor-rpc.publicnode.com"},
			Explorer:    "https://polygonscan.com",
			ExplorerAPI: "https://polygon.blockscout.com/api",
		},
		{
			Name: "arbitrum", DisplayName: "Arbitrum", ChainID: 42161,
			ViemImport: "arbitrum", NativeCurrency: "ETH",
			RPCs:        []string{"https://arb1.arbitrum.io/rpc", "https://arbitrum.llamarpc.com"},
			Explorer:    "https://arbiscan.io",
			ExplorerAPI: "https://arbitrum.blockscout.com/api",
		},
		{
			Name: "optimism", DisplayName: "Optimism", ChainID: 10,
			ViemImport: "optimism", NativeCurrency: "ETH",
			RPCs:        []string{"https://mainnet.optimism.io", "https://optimism.llamarpc.com"},
			Explorer:    "https://optimistic.etherscan.io",
			ExplorerAPI: "https://optimism.blockscout.com/api",
		},
		{
			Name: "bsc", DisplayName: "BNB Chain", ChainID: 56,
			ViemImport: "bsc", NativeCurrency: "BNB",
			RPCs:     []string{"https://bsc-dataseed.bnbchain.org", "https://bsc-rpc.publicnode.com"},
			Explorer: "https://bscscan.com",
		},
	}
}
