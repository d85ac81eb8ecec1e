package ledger

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CanonicalEncode serializes a block into the pinned canonical text form
// used as the hashing pre-image: compact JSON with keys in lexicographic
// order and numbers rendered as shortest plain decimals. This encoding is
// the contract the whole chain hangs on; it must never change once blocks
// exist. The transport layer is free to marshal blocks however it likes.
func CanonicalEncode(b *Block) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"index":`)
	buf.WriteString(strconv.FormatUint(b.Index, 10))
	buf.WriteString(`,"previous_hash":`)
	if b.PreviousHash.IsGenesis() {
		buf.Write(genesisSentinelJSON)
	} else {
		writeCanonicalString(&buf, b.PreviousHash.Hash())
	}
	buf.WriteString(`,"proof":`)
	buf.WriteString(strconv.FormatInt(b.Proof, 10))
	buf.WriteString(`,"timestamp":`)
	buf.WriteString(formatCanonicalNumber(b.Timestamp))
	buf.WriteString(`,"transactions":[`)
	for i := range b.Transactions {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeCanonicalTransaction(&buf, &b.Transactions[i])
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func writeCanonicalTransaction(buf *bytes.Buffer, tx *Transaction) {
	buf.WriteString(`{"amount":`)
	buf.WriteString(formatCanonicalNumber(tx.Amount))
	buf.WriteString(`,"recipient":`)
	writeCanonicalString(buf, tx.Recipient)
	buf.WriteString(`,"sender":`)
	writeCanonicalString(buf, tx.Sender)
	buf.WriteByte('}')
}

// formatCanonicalNumber pins the decimal rendering of timestamps and
// amounts: shortest round-trip form, plain notation, no exponent.
func formatCanonicalNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// writeCanonicalString delegates escaping to encoding/json, whose string
// encoding is deterministic for a given input.
func writeCanonicalString(buf *bytes.Buffer, s string) {
	escaped, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail
		panic(err)
	}
	buf.Write(escaped)
}
