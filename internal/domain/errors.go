package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Cause is a short machine-usable failure classification. Every pipeline
// error carries one so automated callers can branch without parsing the
// human-readable message.
type Cause string

const (
	CauseChainIDMissing   Cause = "chain-id-missing"
	CauseChainIDInvalid   Cause = "chain-id-invalid"
	CauseArtifactExists   Cause = "artifact-exists"
	CauseChainlistFetch   Cause = "chainlist-fetch-failed"
	CauseChainNotListed   Cause = "chain-not-listed"
	CauseChainIDMismatch  Cause = "chain-id-mismatch"
	CauseNoFactoryCode    Cause = "no-factory-code"
	CauseCodeHashMismatch Cause = "code-hash-mismatch"
	CauseNoRPCEndpoint    Cause = "no-rpc-endpoint"
	CauseUnexpected       Cause = "unexpected"
)

// Sentinel errors shared across adapters.
var (
	// ErrNotFound is returned when a requested artifact doesn't exist
	ErrNotFound = errors.New("not found")
)

type causer interface {
	RegistrationCause() Cause
}

// CauseOf classifies any error produced by the pipeline. Errors that don't
// carry an explicit cause are uncategorized.
func CauseOf(err error) Cause {
	var c causer
	if errors.As(err, &c) {
		return c.RegistrationCause()
	}
	return CauseUnexpected
}

// ChainIDMissingError indicates no chain identifier was supplied at all.
type ChainIDMissingError struct{}

func (e *ChainIDMissingError) Error() string {
	return "chain id not provided: pass <chain-id> or set PREDEPLOY_CHAIN_ID"
}

func (e *ChainIDMissingError) RegistrationCause() Cause { return CauseChainIDMissing }

// ChainIDInvalidError indicates the supplied identifier is not a positive
// base-10 integer.
type ChainIDInvalidError struct {
	Raw string
}

func (e *ChainIDInvalidError) Error() string {
	return fmt.Sprintf("invalid chain id %q: must be a positive base-10 integer", e.Raw)
}

func (e *ChainIDInvalidError) RegistrationCause() Cause { return CauseChainIDInvalid }

// ArtifactExistsError indicates an artifact was already registered for the
// chain. The tool never overwrites.
type ArtifactExistsError struct {
	ChainID uint64
	Path    string
}

func (e *ArtifactExistsError) Error() string {
	return fmt.Sprintf("artifact for chain %d already exists at %s", e.ChainID, e.Path)
}

func (e *ArtifactExistsError) RegistrationCause() Cause { return CauseArtifactExists }

// ChainlistFetchError indicates the public chain registry returned a
// non-success HTTP status. Status and body are kept for diagnostics.
type ChainlistFetchError struct {
	URL    string
	Status int
	Body   string
}

func (e *ChainlistFetchError) Error() string {
	return fmt.Sprintf("chainlist fetch failed: %s returned status %d: %s", e.URL, e.Status, e.Body)
}

func (e *ChainlistFetchError) RegistrationCause() Cause { return CauseChainlistFetch }

// ChainNotListedError indicates the chain is absent from the public registry.
type ChainNotListedError struct {
	ChainID uint64
}

func (e *ChainNotListedError) Error() string {
	return fmt.Sprintf("chain %d is not listed on chainlist; use --skip-chainlist to register anyway", e.ChainID)
}

func (e *ChainNotListedError) RegistrationCause() Cause { return CauseChainNotListed }

// ChainIDMismatchError indicates the RPC endpoint reports a different chain
// than the one being registered.
type ChainIDMismatchError struct {
	Expected uint64
	Reported uint64
}

func (e *ChainIDMismatchError) Error() string {
	return fmt.Sprintf("rpc endpoint reports chain id %d, expected %d", e.Reported, e.Expected)
}

func (e *ChainIDMismatchError) RegistrationCause() Cause { return CauseChainIDMismatch }

// NoFactoryCodeError indicates no bytecode is deployed at the factory address.
type NoFactoryCodeError struct {
	Address common.Address
}

func (e *NoFactoryCodeError) Error() string {
	return fmt.Sprintf("no code at factory address %s", e.Address.Hex())
}

func (e *NoFactoryCodeError) RegistrationCause() Cause { return CauseNoFactoryCode }

// CodeHashMismatchError indicates bytecode exists at the factory address but
// is not the expected factory.
type CodeHashMismatchError struct {
	Expected common.Hash
	Actual   common.Hash
}

func (e *CodeHashMismatchError) Error() string {
	return fmt.Sprintf("factory code hash mismatch: got %s, want %s", e.Actual.Hex(), e.Expected.Hex())
}

func (e *CodeHashMismatchError) RegistrationCause() Cause { return CauseCodeHashMismatch }

// NoRPCEndpointError indicates no usable RPC endpoint could be resolved for a
// command that requires one.
type NoRPCEndpointError struct {
	ChainID uint64
}

func (e *NoRPCEndpointError) Error() string {
	return fmt.Sprintf("no rpc endpoint available for chain %d: pass --rpc-url", e.ChainID)
}

func (e *NoRPCEndpointError) RegistrationCause() Cause { return CauseNoRPCEndpoint }
