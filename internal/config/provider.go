package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// SetupViper creates the viper instance backing RuntimeConfig. All settings
// are reachable as PREDEPLOY_* environment variables.
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PREDEPLOY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("timeout", 2*time.Minute)

	return v
}

// BindFlags binds the command's flags into viper. Flag names use dashes while
// config keys use underscores, so names are normalized before binding.
func BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

// Provider resolves the RuntimeConfig from viper and predeploy.toml.
// Precedence: flags (bound into viper) > environment > predeploy.toml >
// defaults.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		ChainID:        v.GetString("chain_id"),
		RPCURL:         v.GetString("rpc_url"),
		SkipChainlist:  v.GetBool("skip_chainlist"),
		SummaryPath:    v.GetString("summary_out"),
		ChainlistURL:   v.GetString("chainlist_url"),
		Timeout:        v.GetDuration("timeout"),
		NonInteractive: v.GetBool("non_interactive"),
		Debug:          v.GetBool("debug"),
	}

	// Environment/flags win over predeploy.toml, which wins over defaults.
	artifactsDir := v.GetString("artifacts_dir")
	if artifactsDir == "" {
		artifactsDir = project.ArtifactsDir
	}
	if artifactsDir == "" {
		artifactsDir = "artifacts"
	}
	if !filepath.IsAbs(artifactsDir) {
		artifactsDir = filepath.Join(projectRoot, artifactsDir)
	}
	cfg.ArtifactsDir = artifactsDir

	if cfg.ChainlistURL == "" {
		cfg.ChainlistURL = project.ChainlistURL
	}
	if cfg.ChainlistURL == "" {
		cfg.ChainlistURL = domain.DefaultChainlistURL
	}

	overrides, err := project.RPCOverrides()
	if err != nil {
		return nil, err
	}
	cfg.RPCOverrides = overrides

	return cfg, nil
}
