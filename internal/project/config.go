package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project manifest file name.
const ManifestName = "lumen.toml"

// Config is the decoded project configuration.
type Config struct {
	Target         Target
	Locale         string
	MaxDiagnostics int
	Sources        []string
	CaseSensitive  bool
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Target:         DefaultTarget,
		MaxDiagnostics: 100,
		CaseSensitive:  true,
	}
}

type manifest struct {
	Project struct {
		Target         string   `toml:"target"`
		Locale         string   `toml:"locale"`
		MaxDiagnostics int      `toml:"max_diagnostics"`
		Sources        []string `toml:"sources"`
		CaseSensitive  *bool    `toml:"case_sensitive"`
	} `toml:"project"`
}

// Load reads a lumen.toml manifest. A missing file yields the defaults; a
// malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return cfg, nil
	}

	if m.Project.Target != "" {
		target, err := ParseTarget(m.Project.Target)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Target = target
	}
	if m.Project.Locale != "" {
		cfg.Locale = m.Project.Locale
	}
	if m.Project.MaxDiagnostics > 0 {
		cfg.MaxDiagnostics = m.Project.MaxDiagnostics
	}
	if len(m.Project.Sources) > 0 {
		cfg.Sources = m.Project.Sources
	}
	if m.Project.CaseSensitive != nil {
		cfg.CaseSensitive = *m.Project.CaseSensitive
	}
	return cfg, nil
}
