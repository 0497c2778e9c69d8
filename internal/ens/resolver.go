package ens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"golang.org/x/crypto/sha3"
)

// ENS Registry address, same on Ethereum mainnet and Sepolia.
const registryAddr = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

// Function selectors.
const (
	selResolver = "0x0178b8bf" // resolver(bytes32)
	selAddr     = "0x3b3b57de" // addr(bytes32)
)

const zeroAddr = "0x0000000000000000000000000000000000000000"

// ErrNotFound is returned when a name has no resolver or no address record.
var ErrNotFound = errors.New("ENS name not found")

// IsName reports whether s looks like an ENS name rather than a hex address.
func IsName(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return false
	}
	i := strings.LastIndex(s, ".")
	return i > 0 && i < len(s)-1
}

// Resolver resolves ENS names over an Ethereum JSON-RPC endpoint.
type Resolver struct {
	client *chain.EVMClient
}

// NewResolver returns a Resolver using rpcURL, which must serve a chain
// with the ENS registry deployed.
func NewResolver(rpcURL string) *Resolver {
	return &Resolver{client: chain.NewEVMClient(rpcURL)}
}

// Resolve resolves an ENS name to a checksummed address. It queries the
// registry for the resolver, then calls addr(bytes32) on it.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	name = Normalize(name)
	node := Namehash(name)

	res, err := r.client.Call(ctx, registryAddr, selResolver+node)
	if err != nil {
		return "", fmt.Errorf("querying ENS registry: %w", err)
	}
	resolverAddr := parseAddress(res)
	if resolverAddr == zeroAddr {
		return "", fmt.Errorf("%w: no resolver set for %q", ErrNotFound, name)
	}

	res, err = r.client.Call(ctx, resolverAddr, selAddr+node)
	if err != nil {
		return "", fmt.Errorf("querying ENS resolver: %w", err)
	}
	addr := parseAddress(res)
	if addr == zeroAddr {
		return "", fmt.Errorf("%w: no address record for %q", ErrNotFound, name)
	}
	return chain.NormalizeAddress(addr)
}

// Normalize lower-cases and trims a name. Full UTS-46 normalization is not
// applied.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Namehash implements EIP-137 namehash.
// namehash("") = 0x00...00
// namehash("eth") = keccak256(namehash("") + keccak256("eth"))
func Namehash(name string) string {
	node := make([]byte, 32)

	if name == "" {
		return fmt.Sprintf("%064x", node)
	}

	labels := strings.Split(name, ".")
	// Labels are hashed right-to-left.
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := keccak256([]byte(labels[i]))
		node = keccak256(append(node, labelHash...))
	}

	return fmt.Sprintf("%064x", node)
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// parseAddress extracts a 20-byte address from a 32-byte ABI-encoded word.
// Short or empty results read as the zero address.
func parseAddress(hexResult string) string {
	clean := strings.TrimPrefix(hexResult, "0x")
	if len(clean) < 64 {
		return zeroAddr
	}
	addr := "0x" + strings.ToLower(clean[24:64])
	if strings.Trim(addr[2:], "0") == "" {
		return zeroAddr
	}
	return addr
}
