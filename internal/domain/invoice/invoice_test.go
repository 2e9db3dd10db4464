package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "DZAIR-2026-001", Format("DZAIR", 2026, 1))
	assert.Equal(t, "DZAIR-2026-042", Format("DZAIR", 2026, 42))
	assert.Equal(t, "SHOP-2025-999", Format("SHOP", 2025, 999))

	// Sequences past 999 widen instead of truncating
	assert.Equal(t, "DZAIR-2026-1000", Format("DZAIR", 2026, 1000))
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "DZAIR-2026-%", Pattern("DZAIR", 2026))
}

func TestParseSeq(t *testing.T) {
	seq, ok := ParseSeq("DZAIR-2026-007")
	assert.True(t, ok)
	assert.Equal(t, 7, seq)

	seq, ok = ParseSeq("DZAIR-2026-1234")
	assert.True(t, ok)
	assert.Equal(t, 1234, seq)

	_, ok = ParseSeq("DZAIR-2026-")
	assert.False(t, ok)

	_, ok = ParseSeq("DZAIR-2026-abc")
	assert.False(t, ok)

	_, ok = ParseSeq("garbage")
	assert.False(t, ok)
}

func TestFormatParseSeqRoundTrip(t *testing.T) {
	no := Format(DefaultPrefix, 2026, 58)
	seq, ok := ParseSeq(no)
	assert.True(t, ok)
	assert.Equal(t, 58, seq)
}
