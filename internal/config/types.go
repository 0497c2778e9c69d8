package config

// Config holds all w3sdk configuration.
type Config struct {
	DefaultChain   string              `json:"default_chain"`
	Languages      []string            `json:"languages"`
	ClassName      string              `json:"class_name"`
	PackageName    string              `json:"package_name"`
	PackageVersion string              `json:"package_version"`
	OutputDir      string              `json:"output_dir"`
	LogLevel       string              `json:"log_level"`   // logrus level name
	CustomRPCs     map[string][]string `json:"custom_rpcs"` // chain slug -> RPC URLs, preferred first

	// internal: config dir path used for Save()
	configDir string
}

// GeneratedEntry records one generated package.
type GeneratedEntry struct {
	Address     string   `json:"address"`
	Chain       string   `json:"chain"`
	ClassName   string   `json:"class_name"`
	PackageName string   `json:"package_name"`
	Languages   []string `json:"languages"`
	Output      string   `json:"output"`
	GeneratedAt string   `json:"generated_at"`
}

// HistoryFile is the structure of history.json.
type HistoryFile struct {
	Entries []GeneratedEntry `json:"entries"`
}
