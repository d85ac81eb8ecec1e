package ledger

import (
	"testing"
)

func TestCanonicalEncode(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		expected string
	}{
		{
			name: "genesis block",
			block: Block{
				Index:        1,
				Proof:        100,
				Timestamp:    1700000000.123456,
				Transactions: []Transaction{},
				PreviousHash: GenesisPrev(),
			},
			expected: `{"index":1,"previous_hash":1,"proof":100,"timestamp":1700000000.123456,"transactions":[]}`,
		},
		{
			name: "block with one transaction",
			block: Block{
				Index:     2,
				Proof:     12345,
				Timestamp: 1700000001.5,
				Transactions: []Transaction{
					{Sender: "alice", Recipient: "bob", Amount: 5},
				},
				PreviousHash: HashPrev("aa"),
			},
			expected: `{"index":2,"previous_hash":"aa","proof":12345,"timestamp":1700000001.5,"transactions":[{"amount":5,"recipient":"bob","sender":"alice"}]}`,
		},
		{
			name: "nil transaction slice encodes as empty array",
			block: Block{
				Index:        3,
				Proof:        0,
				Timestamp:    1700000002,
				PreviousHash: HashPrev("bb"),
			},
			expected: `{"index":3,"previous_hash":"bb","proof":0,"timestamp":1700000002,"transactions":[]}`,
		},
		{
			name: "integral timestamp has no fraction or exponent",
			block: Block{
				Index:        4,
				Proof:        -7,
				Timestamp:    1700000000,
				Transactions: []Transaction{},
				PreviousHash: HashPrev("cc"),
			},
			expected: `{"index":4,"previous_hash":"cc","proof":-7,"timestamp":1700000000,"transactions":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(CanonicalEncode(&tt.block))
			if got != tt.expected {
				t.Errorf("CanonicalEncode() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestCanonicalEncodeDeterministic(t *testing.T) {
	block := Block{
		Index:     2,
		Proof:     42,
		Timestamp: 1700000123.75,
		Transactions: []Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 5},
			{Sender: "bob", Recipient: "carol", Amount: 2.5},
		},
		PreviousHash: HashPrev("00ab"),
	}

	first := string(CanonicalEncode(&block))
	second := string(CanonicalEncode(&block))
	if first != second {
		t.Errorf("encoding changed between calls:\n%s\n%s", first, second)
	}
}

func TestHashBlockGoldenVectors(t *testing.T) {
	// Digests cross-checked against an independent sha256 implementation.
	tests := []struct {
		name     string
		block    Block
		expected string
	}{
		{
			name: "genesis block",
			block: Block{
				Index:        1,
				Proof:        100,
				Timestamp:    1700000000.123456,
				Transactions: []Transaction{},
				PreviousHash: GenesisPrev(),
			},
			expected: "c15c113c37b1473d6834dadfad9a6816496571b3c29a25a87d911cd8731cee42",
		},
		{
			name: "second block with transaction",
			block: Block{
				Index:     2,
				Proof:     12345,
				Timestamp: 1700000001.5,
				Transactions: []Transaction{
					{Sender: "alice", Recipient: "bob", Amount: 5},
				},
				PreviousHash: HashPrev("aa"),
			},
			expected: "35ebb1b13de2b6906df65a1ac0a719dc35c4fa236d215647359d6789acc6c773",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashBlock(&tt.block)
			if len(got) != 64 {
				t.Errorf("expected 64-character digest, got %d characters", len(got))
			}
			if got != tt.expected {
				t.Errorf("HashBlock() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestHashBlockSensitivity(t *testing.T) {
	base := Block{
		Index:     2,
		Proof:     42,
		Timestamp: 1700000123,
		Transactions: []Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 5},
		},
		PreviousHash: HashPrev("00ab"),
	}
	baseHash := HashBlock(&base)

	mutations := []struct {
		name   string
		mutate func(*Block)
	}{
		{"index", func(b *Block) { b.Index++ }},
		{"proof", func(b *Block) { b.Proof++ }},
		{"timestamp", func(b *Block) { b.Timestamp++ }},
		{"previous hash", func(b *Block) { b.PreviousHash = HashPrev("00ac") }},
		{"transaction amount", func(b *Block) { b.Transactions[0].Amount++ }},
		{"transaction sender", func(b *Block) { b.Transactions[0].Sender = "mallory" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			mutated := base
			mutated.Transactions = []Transaction{base.Transactions[0]}
			tt.mutate(&mutated)
			if HashBlock(&mutated) == baseHash {
				t.Errorf("hash unchanged after mutating %s", tt.name)
			}
		})
	}
}
