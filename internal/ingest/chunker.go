// Package ingest holds the offline text-preparation helpers shared by
// cmd/kb_ingest.
package ingest

const (
	// DefaultChunkSize is the window length in runes.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is how far consecutive windows overlap, in runes.
	DefaultChunkOverlap = 200
)

// ChunkText splits a document into overlapping fixed-size windows. Texts no
// longer than the window come back as a single chunk. Sizes are measured in
// runes so Cyrillic text is not split mid-character.
func ChunkText(text string, chunkSize, chunkOverlap int) []string {
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - chunkOverlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
