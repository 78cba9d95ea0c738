package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ProjectConfigFile is the optional per-project configuration file.
const ProjectConfigFile = "predeploy.toml"

// ProjectConfig mirrors predeploy.toml.
type ProjectConfig struct {
	// ArtifactsDir overrides the artifacts directory, relative to the
	// project root unless absolute.
	ArtifactsDir string `toml:"artifacts_dir"`

	// ChainlistURL overrides the public registry endpoint.
	ChainlistURL string `toml:"chainlist_url"`

	// RPC maps decimal chain IDs to endpoint overrides, e.g.
	//   [rpc]
	//   "10" = "https://optimism.example.com"
	RPC map[string]string `toml:"rpc"`
}

// LoadProjectConfig reads predeploy.toml from the project root. A missing
// file is not an error; the zero config is returned.
func LoadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	path := filepath.Join(projectRoot, ProjectConfigFile)

	var cfg ProjectConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectConfigFile, err)
	}

	return &cfg, nil
}

// RPCOverrides converts the string-keyed [rpc] table to chain IDs. Keys that
// don't parse as positive integers are rejected rather than silently dropped.
func (c *ProjectConfig) RPCOverrides() (map[uint64]string, error) {
	overrides := make(map[uint64]string, len(c.RPC))
	for key, url := range c.RPC {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid chain id %q in %s [rpc]", key, ProjectConfigFile)
		}
		overrides[id] = url
	}
	return overrides, nil
}

// FindProjectRoot walks up from the working directory looking for
// predeploy.toml. Without one, the working directory itself is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectConfigFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
