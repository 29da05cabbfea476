package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/civictwin/civictwin-api/schema"
)

const logPrefix = "ledger"

// Ledger is an append-only, hash-linked record of accepted analyses. It lives
// in process memory for the lifetime of the service. Appends are serialized
// so two concurrent requests can never link to the same predecessor.
type Ledger struct {
	mu     sync.RWMutex
	blocks []schema.Block
}

func New() *Ledger {
	return &Ledger{blocks: []schema.Block{}}
}

// Append chains a new block onto the ledger and returns a copy of it.
func (l *Ledger) Append(payload schema.BlockPayload) schema.Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	previous := schema.GenesisHash
	if n := len(l.blocks); n > 0 {
		previous = l.blocks[n-1].Hash
	}

	block := schema.Block{
		ID:           uuid.New().String(),
		Timestamp:    time.Now(),
		Payload:      payload,
		PreviousHash: previous,
	}
	block.Hash = blockHash(block)

	l.blocks = append(l.blocks, block)
	return block
}

// blockHash digests the block content excluding its own hash field.
func blockHash(b schema.Block) string {
	content := struct {
		ID           string              `json:"id"`
		Timestamp    time.Time           `json:"timestamp"`
		Payload      schema.BlockPayload `json:"data"`
		PreviousHash string              `json:"previous_hash"`
	}{b.ID, b.Timestamp, b.Payload, b.PreviousHash}

	encoded, _ := json.Marshal(content)
	digest := sha256.Sum256(encoded)
	return hex.EncodeToString(digest[:])
}

// Verify walks the chain and reports whether every block still links to its
// predecessor and still matches its own content digest. It returns false on
// the first mismatch.
func (l *Ledger) Verify() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	previous := schema.GenesisHash
	for i, b := range l.blocks {
		if b.PreviousHash != previous || b.Hash != blockHash(b) {
			log.WithField("prefix", logPrefix).Warnf("chain broken at block %d", i)
			return false
		}
		previous = b.Hash
	}
	return true
}

// LastBlocks returns up to n of the most recent blocks, oldest first.
func (l *Ledger) LastBlocks(n int) []schema.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.blocks) {
		n = len(l.blocks)
	}
	out := make([]schema.Block, n)
	copy(out, l.blocks[len(l.blocks)-n:])
	return out
}

// Length returns the number of blocks in the chain.
func (l *Ledger) Length() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}
