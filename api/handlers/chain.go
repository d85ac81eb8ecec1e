package handlers

import (
	"net/http"

	"goledger/ledger"
)

type chainResponse struct {
	Chain       []*ledger.Block `json:"chain"`
	ChainLength int             `json:"chain_length"`
}

type lastBlockResponse struct {
	LastBlock *ledger.Block `json:"last_block"`
}

func HandleChain(w http.ResponseWriter, r *http.Request, l *ledger.Ledger) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chain := l.Chain()
	writeJSON(w, http.StatusOK, chainResponse{
		Chain:       chain,
		ChainLength: len(chain),
	})
}

func HandleLastBlock(w http.ResponseWriter, r *http.Request, l *ledger.Ledger) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, lastBlockResponse{
		LastBlock: l.LastBlock(),
	})
}
