package ledger

const (
	// DefaultDifficulty is the number of leading zero hex digits a proof
	// hash must carry. Fixed per ledger at construction, never adjusted.
	DefaultDifficulty = 6

	// GenesisProof is the trivial proof the genesis block is sealed with.
	// It is never validated; the chain simply has to start somewhere.
	GenesisProof = 100

	// RewardSender marks the synthetic sender of mining rewards.
	RewardSender = "0"

	// RewardAmount is the fixed payout for a successfully mined block.
	RewardAmount = 1
)
