package schema

import "time"

// GenesisHash is the previous-hash sentinel of the first block in the chain.
const GenesisHash = "0"

// BlockPayload is the summary of an accepted analysis recorded in the ledger.
type BlockPayload struct {
	CivicMetrics
	CivicStress float64 `json:"civic_stress"`
	AlertLevel  string  `json:"alert_level"`
}

// Block is one hash-linked entry of the snapshot ledger. For every block but
// the first, PreviousHash equals the Hash of its predecessor.
type Block struct {
	ID           string       `json:"id"`
	Timestamp    time.Time    `json:"timestamp"`
	Payload      BlockPayload `json:"data"`
	Hash         string       `json:"hash"`
	PreviousHash string       `json:"previous_hash"`
}
