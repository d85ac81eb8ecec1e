// Package miner is the brute-force agent that searches for proofs the
// ledger only ever verifies. It runs outside the engine, either in-process
// (tests) or against a remote node over HTTP (cmd/miner).
package miner

import "goledger/ledger"

// Search scans proofs from 0 upwards until one satisfies the work
// predicate for the given serialized block. At real difficulties this is
// the expensive half of proof-of-work; there is no shortcut.
func Search(serialized []byte, difficulty int) int64 {
	var proof int64
	for !ledger.ValidProof(serialized, proof, difficulty) {
		proof++
	}
	return proof
}
