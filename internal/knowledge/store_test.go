package knowledge_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, dir, name string, chunks []domain.KnowledgeChunk) string {
	t.Helper()
	data, err := json.Marshal(chunks)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadSnapshot_RoundTrip(t *testing.T) {
	chunks := []domain.KnowledgeChunk{
		{Source: "https://www.zamanbank.kz/ru/cards/", Content: "Карта Zaman", Vector: []float64{0.1, 0.2}},
		{Source: "https://www.zamanbank.kz/ru/deposits/", Content: "Депозит", Vector: []float64{0.3, 0.4}},
	}
	path := writeSnapshot(t, t.TempDir(), "ru.json", chunks)

	loaded, err := knowledge.LoadSnapshot(path)

	require.NoError(t, err)
	assert.Equal(t, chunks, loaded)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := knowledge.LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadSnapshot_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := knowledge.LoadSnapshot(path)
	assert.Error(t, err)
}

func TestLoadStore_MissingSnapshotYieldsEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	ruChunks := []domain.KnowledgeChunk{
		{Source: "src", Content: "контент", Vector: []float64{1}},
	}
	ruPath := writeSnapshot(t, dir, "ru.json", ruChunks)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := knowledge.LoadStore(ruPath, filepath.Join(dir, "missing.json"), logger)

	assert.Equal(t, ruChunks, store.Corpus(domain.LanguageRussian))
	assert.Empty(t, store.Corpus(domain.LanguageKazakh))
}

func TestStore_CorporaArePartitioned(t *testing.T) {
	ru := []domain.KnowledgeChunk{{Source: "ru", Content: "русский", Vector: []float64{1}}}
	kk := []domain.KnowledgeChunk{{Source: "kk", Content: "қазақша", Vector: []float64{1}}}

	store := knowledge.NewStore(ru, kk)

	assert.Equal(t, ru, store.Corpus(domain.LanguageRussian))
	assert.Equal(t, kk, store.Corpus(domain.LanguageKazakh))
}
