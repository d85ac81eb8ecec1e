package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Transaction is a value transfer between two parties. Immutable once
// created; it lives inside exactly one block after the next seal.
type Transaction struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// PrevHash is the previous-hash field of a block: either the genesis
// sentinel or the hex digest of the prior block. The genesis sentinel
// serializes as the bare integer 1, every other value as a JSON string,
// so existing clients parse the chain unchanged.
type PrevHash struct {
	genesis bool
	hash    string
}

// GenesisPrev returns the sentinel previous-hash of the genesis block.
func GenesisPrev() PrevHash {
	return PrevHash{genesis: true}
}

// HashPrev wraps a block hash digest as a previous-hash value.
func HashPrev(hash string) PrevHash {
	return PrevHash{hash: hash}
}

func (p PrevHash) IsGenesis() bool { return p.genesis }

// Hash returns the digest, or the empty string for the genesis sentinel.
func (p PrevHash) Hash() string { return p.hash }

var genesisSentinelJSON = []byte("1")

func (p PrevHash) MarshalJSON() ([]byte, error) {
	if p.genesis {
		return genesisSentinelJSON, nil
	}
	return json.Marshal(p.hash)
}

func (p *PrevHash) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, genesisSentinelJSON) {
		*p = PrevHash{genesis: true}
		return nil
	}
	var hash string
	if err := json.Unmarshal(data, &hash); err != nil {
		return fmt.Errorf("previous_hash must be the genesis sentinel or a string: %w", err)
	}
	*p = PrevHash{hash: hash}
	return nil
}

func (p PrevHash) String() string {
	if p.genesis {
		return "1"
	}
	return p.hash
}

// Block is one sealed entry of the chain. Index is the 1-based chain
// position, Timestamp is seconds since epoch at seal time.
type Block struct {
	Index        uint64        `json:"index"`
	Proof        int64         `json:"proof"`
	Timestamp    float64       `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
	PreviousHash PrevHash      `json:"previous_hash"`
}
