package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashBlock computes the SHA-256 digest of a block's canonical encoding
// as a 64-character lowercase hex string. Pure and deterministic: an
// unmodified block always hashes to the same digest.
func HashBlock(b *Block) string {
	sum := sha256.Sum256(CanonicalEncode(b))
	return hex.EncodeToString(sum[:])
}

// ValidProof reports whether proof satisfies the work predicate against
// the canonical serialization of a reference block: the hex digest of
// sha256(serialized + decimal proof) must start with difficulty '0'
// characters. Cheap to verify; finding a satisfying proof is the miner's
// job, never the ledger's.
func ValidProof(serialized []byte, proof int64, difficulty int) bool {
	guess := make([]byte, 0, len(serialized)+20)
	guess = append(guess, serialized...)
	guess = strconv.AppendInt(guess, proof, 10)

	sum := sha256.Sum256(guess)
	digest := hex.EncodeToString(sum[:])

	if difficulty > len(digest) {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if digest[i] != '0' {
			return false
		}
	}
	return true
}
