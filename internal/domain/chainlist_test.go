package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindChainByID(t *testing.T) {
	entries := []ChainEntry{
		{Name: "Ethereum Mainnet", ChainID: 1},
		{Name: "OP Mainnet", ChainID: 10},
		{Name: "OP Mainnet (duplicate)", ChainID: 10},
	}

	entry, ok := FindChainByID(entries, 10)
	assert.True(t, ok)
	assert.Equal(t, "OP Mainnet", entry.Name, "first match wins")

	_, ok = FindChainByID(entries, 999)
	assert.False(t, ok)
}

func TestFirstHTTPRPC(t *testing.T) {
	t.Run("skips non-http endpoints", func(t *testing.T) {
		entry := ChainEntry{RPC: []string{
			"wss://mainnet.example.com/ws",
			"https://mainnet.example.com",
			"http://fallback.example.com",
		}}
		url, ok := entry.FirstHTTPRPC()
		assert.True(t, ok)
		assert.Equal(t, "https://mainnet.example.com", url)
	})

	t.Run("none qualifies", func(t *testing.T) {
		entry := ChainEntry{RPC: []string{"wss://only.ws.example.com"}}
		_, ok := entry.FirstHTTPRPC()
		assert.False(t, ok)
	})

	t.Run("empty list", func(t *testing.T) {
		entry := ChainEntry{}
		_, ok := entry.FirstHTTPRPC()
		assert.False(t, ok)
	})
}

func TestChainEntryMatches(t *testing.T) {
	entry := ChainEntry{Name: "OP Mainnet", Chain: "ETH", ShortName: "oeth"}
	assert.True(t, entry.Matches("op main"))
	assert.True(t, entry.Matches("OETH"))
	assert.False(t, entry.Matches("arbitrum"))
}
