package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
)

// DirEnv overrides the config directory when no explicit dir is given.
const DirEnv = "W3SDK_CONFIG_DIR"

const (
	defaultOutputDir = "."
	defaultLogLevel  = "warn"

	// maxHistory bounds history.json; older entries are dropped first.
	maxHistory = 50

	configFile  = "config.json"
	historyFile = "history.json"
)

// Load reads config from dir (or creates defaults). dir defaults to
// $W3SDK_CONFIG_DIR, then ~/.w3sdk.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".w3sdk")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.CustomRPCs == nil {
		cfg.CustomRPCs = make(map[string][]string)
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{string(sdkgen.JavaScript)}
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	return saveJSON(filepath.Join(c.configDir, configFile), c)
}

// AddRPC adds a custom RPC URL for a chain.
func (c *Config) AddRPC(chainName, url string) error {
	if c.CustomRPCs == nil {
		c.CustomRPCs = make(map[string][]string)
	}
	if slices.Contains(c.CustomRPCs[chainName], url) {
		return fmt.Errorf("RPC %s already exists for chain %s", url, chainName)
	}
	c.CustomRPCs[chainName] = append(c.CustomRPCs[chainName], url)
	return nil
}

// RemoveRPC removes a custom RPC URL for a chain.
func (c *Config) RemoveRPC(chainName, url string) error {
	rpcs := c.CustomRPCs[chainName]
	idx := slices.Index(rpcs, url)
	if idx == -1 {
		return fmt.Errorf("RPC %s not found for chain %s", url, chainName)
	}
	c.CustomRPCs[chainName] = slices.Delete(rpcs, idx, idx+1)
	return nil
}

// GetRPCs returns custom RPCs for a chain.
func (c *Config) GetRPCs(chainName string) []string {
	return c.CustomRPCs[chainName]
}

// RPCFor returns the RPC a generated client should default to: the first
// custom RPC if any, else the chain's registered one.
func (c *Config) RPCFor(ch *chain.Chain) string {
	if rpcs := c.CustomRPCs[ch.Name]; len(rpcs) > 0 {
		return rpcs[0]
	}
	return ch.RPC()
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// LoadHistory reads history.json.
func (c *Config) LoadHistory() (*HistoryFile, error) {
	return loadJSON[HistoryFile](filepath.Join(c.configDir, historyFile))
}

// RecordGenerated appends e to history.json.
func (c *Config) RecordGenerated(e GeneratedEntry) error {
	h, err := c.LoadHistory()
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	h.Entries = append(h.Entries, e)
	if len(h.Entries) > maxHistory {
		h.Entries = h.Entries[len(h.Entries)-maxHistory:]
	}
	return saveJSON(filepath.Join(c.configDir, historyFile), h)
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		DefaultChain:   chain.DefaultChain,
		Languages:      []string{string(sdkgen.JavaScript)},
		ClassName:      sdkgen.DefaultClassName,
		PackageName:    sdkgen.DefaultPackageName,
		PackageVersion: sdkgen.DefaultPackageVersion,
		OutputDir:      defaultOutputDir,
		LogLevel:       defaultLogLevel,
		CustomRPCs:     make(map[string][]string),
		configDir:      dir,
	}
}

func loadJSON[T any](path string) (*T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &zero, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
