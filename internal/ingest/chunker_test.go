package ingest_test

import (
	"strings"
	"testing"

	"github.com/Max-Ceph/zaman-hacknu/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortTextSingleChunk(t *testing.T) {
	chunks := ingest.ChunkText("короткий текст", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "короткий текст", chunks[0])
}

func TestChunkTextExactWindowSingleChunk(t *testing.T) {
	text := strings.Repeat("а", 1000)
	chunks := ingest.ChunkText(text, 1000, 200)
	assert.Len(t, chunks, 1)
}

func TestChunkTextOverlappingWindows(t *testing.T) {
	text := strings.Repeat("б", 2000)
	chunks := ingest.ChunkText(text, 1000, 200)

	// Windows start every 800 runes: 0, 800, 1600.
	require.Len(t, chunks, 3)
	assert.Len(t, []rune(chunks[0]), 1000)
	assert.Len(t, []rune(chunks[1]), 1000)
	assert.Len(t, []rune(chunks[2]), 400)
}

func TestChunkTextCountsRunesNotBytes(t *testing.T) {
	// 1100 Cyrillic runes are 2200 bytes; the split must be by runes.
	text := strings.Repeat("ж", 1100)
	chunks := ingest.ChunkText(text, 1000, 200)
	require.Len(t, chunks, 2)
	assert.Len(t, []rune(chunks[0]), 1000)
	assert.Len(t, []rune(chunks[1]), 300)
}
