package ledger

import (
	"sync"
	"time"
)

// Ledger is the append-only chain plus the queue of transactions waiting
// for the next block. One mutex guards both; each exported operation is
// atomic on its own, and Mine covers the whole validate/seal/reward
// sequence in a single critical section.
type Ledger struct {
	mu         sync.Mutex
	chain      []*Block
	pending    []Transaction
	difficulty int
}

// New constructs a ledger at the default difficulty and seals its genesis
// block. The chain is never empty afterwards.
func New() *Ledger {
	return NewWithDifficulty(DefaultDifficulty)
}

// NewWithDifficulty constructs a ledger whose work predicate requires the
// given number of leading zero hex digits. Intended for tests and private
// deployments; the difficulty is fixed for the ledger's lifetime.
func NewWithDifficulty(difficulty int) *Ledger {
	l := &Ledger{
		pending:    make([]Transaction, 0),
		difficulty: difficulty,
	}
	l.seal(GenesisProof, GenesisPrev())
	return l
}

// Difficulty returns the leading-zero requirement this ledger validates
// proofs against.
func (l *Ledger) Difficulty() int {
	return l.difficulty
}

// CreateBlock seals the pending queue into a new block and appends it to
// the chain. The proof and previous hash are taken as given; validating
// the proof is the caller's step (or use Mine, which does both).
func (l *Ledger) CreateBlock(proof int64, prev PrevHash) *Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seal(proof, prev)
}

// seal must be called with the mutex held (or from a constructor).
func (l *Ledger) seal(proof int64, prev PrevHash) *Block {
	b := &Block{
		Index:        uint64(len(l.chain)) + 1,
		Proof:        proof,
		Timestamp:    float64(time.Now().UnixNano()) / float64(time.Second),
		Transactions: l.pending,
		PreviousHash: prev,
	}
	l.pending = make([]Transaction, 0)
	l.chain = append(l.chain, b)
	return b
}

// EnqueueTransaction queues a transfer for inclusion in the next sealed
// block and returns that block's predicted index. The prediction can go
// stale if another seal interleaves before the queue is drained.
func (l *Ledger) EnqueueTransaction(sender, recipient string, amount float64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	return l.chain[len(l.chain)-1].Index + 1
}

// Mine validates the submitted proof against the canonical form of the
// current last block and, if it holds, seals the pending queue into a new
// block and queues the reward transaction, all under one lock. The reward
// is queued after sealing, so it lands in the block after the one
// returned here. Returns (nil, false) and leaves the ledger untouched
// when the proof is invalid.
func (l *Ledger) Mine(proof int64, recipient string) (*Block, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	last := l.chain[len(l.chain)-1]
	if !ValidProof(CanonicalEncode(last), proof, l.difficulty) {
		return nil, false
	}

	b := l.seal(proof, HashPrev(HashBlock(last)))
	l.pending = append(l.pending, Transaction{
		Sender:    RewardSender,
		Recipient: recipient,
		Amount:    RewardAmount,
	})
	return b, true
}

// LastBlock returns the most recently sealed block. Total: the genesis
// block exists from construction and the chain only ever grows.
func (l *Ledger) LastBlock() *Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chain[len(l.chain)-1]
}

// Chain returns a snapshot of the block sequence. The slice is a copy;
// the blocks themselves are shared and immutable once sealed.
func (l *Ledger) Chain() []*Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	chain := make([]*Block, len(l.chain))
	copy(chain, l.chain)
	return chain
}

// Len reports the number of sealed blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.chain)
}

// PendingTransactions returns a snapshot of the queue awaiting the next
// seal.
func (l *Ledger) PendingTransactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	pending := make([]Transaction, len(l.pending))
	copy(pending, l.pending)
	return pending
}
