package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goledger/ledger"
)

func TestHandleChain(t *testing.T) {
	l := ledger.New()
	l.CreateBlock(42, ledger.HashPrev(ledger.HashBlock(l.LastBlock())))

	req := httptest.NewRequest("GET", "/chain", nil)
	w := httptest.NewRecorder()
	HandleChain(w, req, l)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp chainResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ChainLength != 2 {
		t.Errorf("expected chain_length 2, got %d", resp.ChainLength)
	}
	if len(resp.Chain) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(resp.Chain))
	}
	if !resp.Chain[0].PreviousHash.IsGenesis() {
		t.Error("expected first block to carry the genesis sentinel")
	}
	if resp.Chain[1].Index != 2 {
		t.Errorf("expected second block index 2, got %d", resp.Chain[1].Index)
	}
}

func TestHandleChainGenesisSentinelWire(t *testing.T) {
	l := ledger.New()

	req := httptest.NewRequest("GET", "/chain", nil)
	w := httptest.NewRecorder()
	HandleChain(w, req, l)

	// The sentinel must serialize as the bare integer 1, not a string.
	if !strings.Contains(w.Body.String(), `"previous_hash":1`) {
		t.Errorf("expected bare integer sentinel on the wire, got %s", w.Body.String())
	}
}

func TestHandleLastBlock(t *testing.T) {
	l := ledger.New()

	req := httptest.NewRequest("GET", "/last_block", nil)
	w := httptest.NewRecorder()
	HandleLastBlock(w, req, l)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp lastBlockResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.LastBlock == nil {
		t.Fatal("expected a last block")
	}
	if resp.LastBlock.Index != 1 {
		t.Errorf("expected genesis index 1, got %d", resp.LastBlock.Index)
	}
}

func TestReadEndpointsMethodGuards(t *testing.T) {
	l := ledger.New()

	tests := []struct {
		name    string
		handler func(http.ResponseWriter, *http.Request, *ledger.Ledger)
		path    string
	}{
		{"chain", HandleChain, "/chain"},
		{"last block", HandleLastBlock, "/last_block"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.path, nil)
			w := httptest.NewRecorder()
			tt.handler(w, req, l)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}
		})
	}
}
