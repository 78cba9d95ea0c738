package domain

import "strings"

// ChainEntry is one record of the public chain registry. Read-only input;
// only the fields the registrar cares about are decoded.
type ChainEntry struct {
	Name      string   `json:"name"`
	Chain     string   `json:"chain"`
	ShortName string   `json:"shortName"`
	ChainID   uint64   `json:"chainId"`
	InfoURL   string   `json:"infoURL"`
	RPC       []string `json:"rpc"`
}

// FindChainByID scans entries linearly for the first one matching id. The
// registry occasionally carries duplicates; presence is all that matters.
func FindChainByID(entries []ChainEntry, id uint64) (*ChainEntry, bool) {
	for i := range entries {
		if entries[i].ChainID == id {
			return &entries[i], true
		}
	}
	return nil, false
}

// FirstHTTPRPC returns the first listed endpoint with an http or https
// scheme. Websocket endpoints and anything else are skipped.
func (e *ChainEntry) FirstHTTPRPC() (string, bool) {
	for _, u := range e.RPC {
		if strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://") {
			return u, true
		}
	}
	return "", false
}

// Matches reports whether the entry matches a case-insensitive name query
// against its name, chain tag or short name.
func (e *ChainEntry) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Chain), q) ||
		strings.Contains(strings.ToLower(e.ShortName), q)
}
