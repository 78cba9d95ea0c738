package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChainID(t *testing.T) {
	t.Run("valid identifiers", func(t *testing.T) {
		cases := map[string]uint64{
			"1":      1,
			"10":     10,
			"84532":  84532,
			" 42161": 42161,
		}
		for raw, want := range cases {
			got, err := ParseChainID(raw)
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, want, got)
		}
	})

	t.Run("missing identifier", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := ParseChainID(raw)
			require.Error(t, err)
			assert.Equal(t, CauseChainIDMissing, CauseOf(err))
		}
	})

	t.Run("invalid identifiers", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-5", "1.5", "0x10", "+7", "10abc"} {
			_, err := ParseChainID(raw)
			require.Error(t, err, "raw=%q", raw)
			assert.Equal(t, CauseChainIDInvalid, CauseOf(err), "raw=%q", raw)
		}
	})
}

func TestCauseOf(t *testing.T) {
	assert.Equal(t, CauseArtifactExists, CauseOf(&ArtifactExistsError{ChainID: 10, Path: "artifacts/10/deployment.json"}))
	assert.Equal(t, CauseUnexpected, CauseOf(assert.AnError))
}
