package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Well-known constants for the pre-installed deterministic deployment factory.
var (
	// FactoryAddress is the fixed address the factory occupies on every
	// network it is pre-installed on.
	FactoryAddress = common.HexToAddress("0x914d7Fec6aaC8cd542e72Bca78B30650d45643d7")

	// FactoryRuntimeCode is the runtime bytecode expected at FactoryAddress.
	FactoryRuntimeCode = common.FromHex("0x60203d3d3582360380843d373d34f58060353d3d82803e903d91601e57fd5bf3")

	// FactoryCodeHash is the Keccak-256 hash of FactoryRuntimeCode.
	FactoryCodeHash = common.HexToHash("0x6512ac4190997ba78ec99510a2402e1eead7dab867a22ed561f378fb64f01ff8")
)

// DefaultChainlistURL is the public chain registry queried during registration.
const DefaultChainlistURL = "https://chainid.network/chains.json"

// ArtifactFileName is the file name of an artifact within its chain directory.
const ArtifactFileName = "deployment.json"

// PredeployArtifact records that no deployment transaction is needed for a
// chain because the factory is already present as a system-level preinstall.
// The shape is fixed; only the file it is written to varies per chain.
type PredeployArtifact struct {
	GasPrice      uint64 `json:"gasPrice"`
	GasLimit      uint64 `json:"gasLimit"`
	SignerAddress string `json:"signerAddress"`
	Transaction   string `json:"transaction"`
	Address       string `json:"address"`
}

// NewPredeployArtifact returns the canonical pre-deployment artifact.
func NewPredeployArtifact() *PredeployArtifact {
	return &PredeployArtifact{
		GasPrice:      0,
		GasLimit:      0,
		SignerAddress: common.Address{}.Hex(),
		Transaction:   "0x",
		Address:       FactoryAddress.Hex(),
	}
}

// RegisteredArtifact is an artifact found on disk together with its location.
type RegisteredArtifact struct {
	ChainID  uint64
	Path     string
	Artifact *PredeployArtifact
}

// VerificationOutcome is the result of querying an RPC endpoint about the
// factory. It only gates artifact creation and is discarded afterwards.
type VerificationOutcome struct {
	ReportedChainID uint64
	CodeSize        int
	CodeHash        common.Hash
}
