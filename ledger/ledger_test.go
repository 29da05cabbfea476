package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civictwin/civictwin-api/schema"
)

func testPayload(stress float64) schema.BlockPayload {
	return schema.BlockPayload{
		CivicMetrics: schema.CivicMetrics{
			Traffic:    stress,
			Pollution:  stress,
			PowerUsage: stress,
			WaterUse:   stress,
			Complaints: stress,
		},
		CivicStress: stress,
		AlertLevel:  schema.AlertMedium,
	}
}

func TestAppendChainsBlocks(t *testing.T) {
	l := New()

	first := l.Append(testPayload(10))
	assert.Equal(t, schema.GenesisHash, first.PreviousHash)
	assert.NotEmpty(t, first.Hash)

	second := l.Append(testPayload(20))
	assert.Equal(t, first.Hash, second.PreviousHash)
	assert.NotEqual(t, first.Hash, second.Hash)

	assert.Equal(t, 2, l.Length())
}

func TestChainLengthAfterSequentialAppends(t *testing.T) {
	l := New()
	for i := 0; i < 25; i++ {
		l.Append(testPayload(float64(i)))
	}
	assert.Equal(t, 25, l.Length())
}

func TestVerify(t *testing.T) {
	l := New()
	assert.True(t, l.Verify(), "empty chain should verify")

	for i := 0; i < 10; i++ {
		l.Append(testPayload(float64(i)))
	}
	assert.True(t, l.Verify())
}

func TestVerifyDetectsCorruptedLink(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Append(testPayload(float64(i)))
	}

	l.blocks[2].PreviousHash = "forged"
	assert.False(t, l.Verify())
}

func TestVerifyDetectsCorruptedPayload(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Append(testPayload(float64(i)))
	}

	l.blocks[3].Payload.CivicStress = 999
	assert.False(t, l.Verify())
}

func TestLastBlocks(t *testing.T) {
	l := New()
	assert.Empty(t, l.LastBlocks(10))

	for i := 0; i < 15; i++ {
		l.Append(testPayload(float64(i)))
	}

	last := l.LastBlocks(10)
	assert.Len(t, last, 10)
	assert.Equal(t, 14.0, last[9].Payload.CivicStress)

	// oldest first, each block linked to the one before it
	for i := 1; i < len(last); i++ {
		assert.Equal(t, last[i-1].Hash, last[i].PreviousHash)
	}
}

func TestConcurrentAppendsStayLinear(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Append(testPayload(float64(n)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, l.Length())
	assert.True(t, l.Verify())

	// no two blocks share a predecessor
	seen := map[string]bool{}
	for _, b := range l.LastBlocks(100) {
		assert.False(t, seen[b.PreviousHash], "duplicate previous hash %s", b.PreviousHash)
		seen[b.PreviousHash] = true
	}
}
