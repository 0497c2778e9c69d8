// Package keystore keeps explorer API keys out of config.json, in the OS
// keychain.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

const keychainService = "w3sdk"

// EnvExplorerKey, when set, wins over every stored explorer key.
const EnvExplorerKey = "W3SDK_EXPLORER_KEY"

// Store is the secret storage the keystore is built on.
type Store interface {
	Set(ref, value string) error
	Get(ref string) (string, error)
	Delete(ref string) error
}

// Keychain is a Store backed by the OS keychain.
type Keychain struct {
	ring keyring.Keyring
}

// OpenKeychain opens the OS keychain. fileDir is used by the file backend,
// which is the fallback on headless Linux.
func OpenKeychain(fileDir string) (*Keychain, error) {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
		FileDir:                  fileDir,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		// Use file backend as ultimate fallback.
		ring, err = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
			FileDir:         fileDir,
		})
		if err != nil {
			return nil, fmt.Errorf("opening keychain: %w", err)
		}
	}
	return &Keychain{ring: ring}, nil
}

func (k *Keychain) Set(ref, value string) error {
	if err := k.ring.Set(keyring.Item{Key: ref, Data: []byte(value)}); err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

func (k *Keychain) Get(ref string) (string, error) {
	item, err := k.ring.Get(ref)
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (k *Keychain) Delete(ref string) error {
	return k.ring.Remove(ref)
}

// Memory is a Store that keeps secrets in memory (for tests).
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Set(ref, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ref] = value
	return nil
}

func (m *Memory) Get(ref string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[ref]
	if !ok {
		return "", keyring.ErrKeyNotFound
	}
	return v, nil
}

func (m *Memory) Delete(ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[ref]; !ok {
		return keyring.ErrKeyNotFound
	}
	delete(m.data, ref)
	return nil
}

// Keys reads and writes explorer API keys.
type Keys struct {
	store Store
}

// New returns Keys on top of store.
func New(store Store) *Keys {
	return &Keys{store: store}
}

// explorerRef is the keychain reference for a chain's key; "" is the global key.
func explorerRef(chainName string) string {
	if chainName == "" {
		return keychainService + ".explorer"
	}
	return keychainService + ".explorer." + strings.ToLower(chainName)
}

// SetExplorerKey stores key for chainName, or as the global key when
// chainName is empty.
func (k *Keys) SetExplorerKey(chainName, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("explorer key cannot be empty")
	}
	return k.store.Set(explorerRef(chainName), key)
}

// DeleteExplorerKey removes the key for chainName. Removing a missing key is
// not an error.
func (k *Keys) DeleteExplorerKey(chainName string) error {
	err := k.store.Delete(explorerRef(chainName))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}

// ExplorerKey returns the API key to use for chainName: $W3SDK_EXPLORER_KEY,
// then the chain's own key, then the global key. It returns "" when none is
// stored, since explorer keys are optional.
func (k *Keys) ExplorerKey(chainName string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvExplorerKey)); v != "" {
		return v, nil
	}
	refs := []string{explorerRef("")}
	if chainName != "" {
		refs = []string{explorerRef(chainName), explorerRef("")}
	}
	for _, ref := range refs {
		v, err := k.store.Get(ref)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, keyring.ErrKeyNotFound) {
			return "", fmt.Errorf("keychain retrieve: %w", err)
		}
	}
	return "", nil
}
