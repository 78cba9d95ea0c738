package blockchain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predeploy-org/predeploy-cli/internal/domain"
)

// newRPCServer serves a minimal JSON-RPC node reporting the given chain id
// and code at the factory address.
func newRPCServer(t *testing.T, chainID uint64, code []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		var result string
		switch req.Method {
		case "eth_chainId":
			result = hexutil.EncodeUint64(chainID)
		case "eth_getCode":
			result = hexutil.Encode(code)
		default:
			t.Fatalf("unexpected method %q", req.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%q}`, req.ID, result)
	}))
}

func TestVerifierAdapter(t *testing.T) {
	ctx := context.Background()
	verifier := NewVerifierAdapter()

	t.Run("factory present and recognized", func(t *testing.T) {
		srv := newRPCServer(t, 10, domain.FactoryRuntimeCode)
		defer srv.Close()

		outcome, err := verifier.Verify(ctx, srv.URL, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), outcome.ReportedChainID)
		assert.Equal(t, len(domain.FactoryRuntimeCode), outcome.CodeSize)
		assert.Equal(t, domain.FactoryCodeHash, outcome.CodeHash)
	})

	t.Run("chain id mismatch", func(t *testing.T) {
		srv := newRPCServer(t, 1, domain.FactoryRuntimeCode)
		defer srv.Close()

		_, err := verifier.Verify(ctx, srv.URL, 10)
		require.Error(t, err)
		assert.Equal(t, domain.CauseChainIDMismatch, domain.CauseOf(err))
		assert.Contains(t, err.Error(), "reports chain id 1")
	})

	t.Run("no code at factory address", func(t *testing.T) {
		srv := newRPCServer(t, 10, nil)
		defer srv.Close()

		_, err := verifier.Verify(ctx, srv.URL, 10)
		require.Error(t, err)
		assert.Equal(t, domain.CauseNoFactoryCode, domain.CauseOf(err))
	})

	t.Run("unexpected code hash", func(t *testing.T) {
		srv := newRPCServer(t, 10, []byte{0x60, 0x00, 0x60, 0x00, 0xfd})
		defer srv.Close()

		_, err := verifier.Verify(ctx, srv.URL, 10)
		require.Error(t, err)
		assert.Equal(t, domain.CauseCodeHashMismatch, domain.CauseOf(err))
	})
}
