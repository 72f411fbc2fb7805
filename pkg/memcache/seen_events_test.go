package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeenEvents(t *testing.T) {
	store := NewSeenEvents()

	assert.False(t, store.Seen("evt_1"))
	assert.True(t, store.MarkSeen("evt_1", time.Minute))
	assert.True(t, store.Seen("evt_1"))

	assert.False(t, store.MarkSeen("evt_1", time.Minute), "second mark reports a replay")
	assert.False(t, store.Seen("evt_2"))
}

func TestSeenEventsExpiry(t *testing.T) {
	store := NewSeenEvents()

	store.MarkSeen("evt_1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	assert.False(t, store.Seen("evt_1"))
	assert.True(t, store.MarkSeen("evt_1", time.Minute), "expired entries can be re-marked")
}
