package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3sdk/internal/chain"
	"github.com/Mohsinsiddi/w3sdk/internal/sdkgen"
	"github.com/sirupsen/logrus"
)

// ErrUnknownKey is returned by Get and Set for keys not in Keys.
var ErrUnknownKey = errors.New("unknown config key")

// Keys lists the settable keys in display order.
var Keys = []string{
	"default_chain",
	"languages",
	"class_name",
	"package_name",
	"package_version",
	"output_dir",
	"log_level",
}

// Get returns the string form of a config key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "default_chain":
		return c.DefaultChain, nil
	case "languages":
		return strings.Join(c.Languages, ","), nil
	case "class_name":
		return c.ClassName, nil
	case "package_name":
		return c.PackageName, nil
	case "package_version":
		return c.PackageVersion, nil
	case "output_dir":
		return c.OutputDir, nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set validates value and assigns it to key. Call Save to persist.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "default_chain":
		ch, err := chain.NewRegistry().GetByName(value)
		if err != nil {
			return fmt.Errorf("%w: %q", err, value)
		}
		c.DefaultChain = ch.Name
	case "languages":
		langs, err := ParseLanguages(value)
		if err != nil {
			return err
		}
		c.Languages = langs
	case "class_name":
		if err := sdkgen.CheckClassName(value); err != nil {
			return err
		}
		c.ClassName = value
	case "package_name":
		if value == "" {
			return fmt.Errorf("package_name cannot be empty")
		}
		if err := sdkgen.ValidatePackageName(value); err != nil {
			return err
		}
		c.PackageName = value
	case "package_version":
		if value == "" {
			return fmt.Errorf("package_version cannot be empty")
		}
		c.PackageVersion = value
	case "output_dir":
		if value == "" {
			value = defaultOutputDir
		}
		c.OutputDir = value
	case "log_level":
		lvl, err := logrus.ParseLevel(value)
		if err != nil {
			return err
		}
		c.LogLevel = lvl.String()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// ParseLanguages parses a comma-separated language list into canonical,
// de-duplicated names.
func ParseLanguages(s string) ([]string, error) {
	var out []string
	seen := map[sdkgen.Language]bool{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		lang, err := sdkgen.ParseLanguage(part)
		if err != nil {
			return nil, err
		}
		if !seen[lang] {
			seen[lang] = true
			out = append(out, string(lang))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no language given", sdkgen.ErrUnsupportedLanguage)
	}
	return out, nil
}
