package miner

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"goledger/ledger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client drives a ledger node's HTTP interface: it fetches the last
// block, searches for a proof locally, and submits it to /mine.
type Client struct {
	BaseURL    string
	ID         string
	HTTPClient *http.Client
}

// NewClient returns a client for the node at baseURL submitting rewards
// to the given identifier.
func NewClient(baseURL, id string) *Client {
	return &Client{
		BaseURL: baseURL,
		ID:      id,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type lastBlockResponse struct {
	LastBlock ledger.Block `json:"last_block"`
}

// MineResult is the node's answer to a proof submission. Index,
// Transactions, Proof and PreviousHash are only populated when the proof
// was accepted.
type MineResult struct {
	Message      string               `json:"message"`
	Index        uint64               `json:"index"`
	Transactions []ledger.Transaction `json:"transactions"`
	Proof        int64                `json:"proof"`
	PreviousHash ledger.PrevHash      `json:"previous_hash"`
	Accepted     bool                 `json:"-"`
}

// LastBlock fetches the current chain tail from the node.
func (c *Client) LastBlock() (*ledger.Block, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + "/last_block")
	if err != nil {
		return nil, fmt.Errorf("fetch last block: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch last block: unexpected status %d", resp.StatusCode)
	}

	var body lastBlockResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode last block: %w", err)
	}
	return &body.LastBlock, nil
}

// SubmitProof posts a proof to /mine and reports the node's verdict.
func (c *Client) SubmitProof(proof int64) (*MineResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"proof": proof,
		"id":    c.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("encode mine request: %w", err)
	}

	resp, err := c.HTTPClient.Post(c.BaseURL+"/mine", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("submit proof: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("submit proof: unexpected status %d", resp.StatusCode)
	}

	var result MineResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode mine response: %w", err)
	}
	// A rejected proof still comes back 200; only an accepted one carries
	// a block index.
	result.Accepted = result.Index > 0
	return &result, nil
}

// MineOnce runs one full round: fetch the tail, search for a proof at the
// given difficulty, submit it. The round can still be rejected if another
// miner sealed a block in between.
func (c *Client) MineOnce(difficulty int) (*MineResult, error) {
	last, err := c.LastBlock()
	if err != nil {
		return nil, err
	}

	proof := Search(ledger.CanonicalEncode(last), difficulty)
	return c.SubmitProof(proof)
}
