package handlers

import (
	"net/http"

	"goledger/ledger"
)

// mineRequest uses pointer fields so an absent key is distinguishable
// from a zero value.
type mineRequest struct {
	Proof *int64  `json:"proof"`
	ID    *string `json:"id"`
}

type mineResponse struct {
	Message      string               `json:"message"`
	Index        uint64               `json:"index"`
	Transactions []ledger.Transaction `json:"transactions"`
	Proof        int64                `json:"proof"`
	PreviousHash ledger.PrevHash      `json:"previous_hash"`
}

// HandleMine accepts a miner's proof submission. A rejected proof is not
// an error: the miner just lost the race, so it gets a 200 with a "try
// again" message. Only malformed requests are 400s.
func HandleMine(w http.ResponseWriter, r *http.Request, l *ledger.Ledger) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req mineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}
	if req.Proof == nil || req.ID == nil {
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	block, ok := l.Mine(*req.Proof, *req.ID)
	if !ok {
		writeMessage(w, http.StatusOK, msgInvalidProof)
		return
	}

	writeJSON(w, http.StatusOK, mineResponse{
		Message:      msgNewBlock,
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PreviousHash: block.PreviousHash,
	})
}
