package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectorRecordsTimings(t *testing.T) {
	c := NewCollector()

	c.RecordTiming(OpClassify, 200*time.Millisecond)
	c.RecordTiming(OpClassify, 400*time.Millisecond)
	c.RecordError(OpClassify, 100*time.Millisecond)

	snap := c.GetSnapshot()
	op, ok := snap.Operations[OpClassify]
	if !ok {
		t.Fatal("classify operation missing from snapshot")
	}

	assert.Equal(t, int64(3), op.Count)
	assert.Equal(t, int64(1), op.Errors)
	assert.Equal(t, int64(700), op.TotalTimeMs)
	assert.Equal(t, int64(100), op.MinTimeMs)
	assert.Equal(t, int64(400), op.MaxTimeMs)
	assert.InDelta(t, 233.3, op.AvgTimeMs, 0.5)
}

func TestCollectorEmptySnapshot(t *testing.T) {
	c := NewCollector()

	snap := c.GetSnapshot()
	assert.Empty(t, snap.Operations)
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
}

func TestCollectorSeparatesOperations(t *testing.T) {
	c := NewCollector()

	c.RecordTiming(OpSave, 10*time.Millisecond)
	c.RecordTiming(OpList, 20*time.Millisecond)

	snap := c.GetSnapshot()
	assert.Equal(t, int64(1), snap.Operations[OpSave].Count)
	assert.Equal(t, int64(1), snap.Operations[OpList].Count)
	_, hasClassify := snap.Operations[OpClassify]
	assert.False(t, hasClassify)
}
