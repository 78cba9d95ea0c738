package adapters

import (
	"github.com/google/wire"

	"github.com/predeploy-org/predeploy-cli/internal/adapters/blockchain"
	"github.com/predeploy-org/predeploy-cli/internal/adapters/chainlist"
	"github.com/predeploy-org/predeploy-cli/internal/adapters/fs"
	"github.com/predeploy-org/predeploy-cli/internal/adapters/interactive"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewArtifactStoreAdapter,
	wire.Bind(new(usecase.ArtifactStore), new(*fs.ArtifactStoreAdapter)),
)

// ChainlistSet provides the public registry client
var ChainlistSet = wire.NewSet(
	chainlist.NewClient,
	wire.Bind(new(usecase.ChainlistClient), new(*chainlist.Client)),
)

// BlockchainSet provides the on-chain verifier
var BlockchainSet = wire.NewSet(
	blockchain.NewVerifierAdapter,
	wire.Bind(new(usecase.ChainVerifier), new(*blockchain.VerifierAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ChainSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ChainlistSet,
	BlockchainSet,
	InteractiveSet,
)
