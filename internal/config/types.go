package config

import "time"

// RuntimeConfig is the fully resolved configuration for one invocation.
// Commands and use cases read from it instead of the process environment so
// tests can construct it directly.
type RuntimeConfig struct {
	// ProjectRoot is the directory artifacts are registered under
	ProjectRoot string

	// ArtifactsDir is the absolute path of the artifacts tree
	ArtifactsDir string

	// ChainID is the raw, unvalidated chain identifier. Validation is the
	// pipeline's first step so missing/malformed values surface as causes.
	ChainID string

	// RPCURL is an explicit endpoint override for on-chain verification
	RPCURL string

	// SkipChainlist bypasses the registry presence requirement
	SkipChainlist bool

	// SummaryPath, when set, receives the JSON run summary
	SummaryPath string

	// ChainlistURL is the registry endpoint (overridable for tests/mirrors)
	ChainlistURL string

	// RPCOverrides maps chain IDs to endpoints from predeploy.toml [rpc]
	RPCOverrides map[uint64]string

	// Timeout bounds each invocation
	Timeout time.Duration

	NonInteractive bool
	Debug          bool
}
