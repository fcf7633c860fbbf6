// Package knowledge holds the in-memory knowledge-base corpora. Snapshots
// are produced offline by cmd/kb_ingest, loaded once at process start, and
// read-only thereafter, so the store is safe for unlimited concurrent
// readers without locking.
package knowledge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// Store keeps one immutable corpus per supported language. Languages are a
// hard partition; corpora are never mixed.
type Store struct {
	corpora map[domain.Language][]domain.KnowledgeChunk
}

// NewStore builds a store from preloaded corpora. Intended for tests and
// for callers that load snapshots themselves.
func NewStore(ru, kk []domain.KnowledgeChunk) *Store {
	return &Store{
		corpora: map[domain.Language][]domain.KnowledgeChunk{
			domain.LanguageRussian: ru,
			domain.LanguageKazakh:  kk,
		},
	}
}

// LoadStore loads both language snapshots. A missing snapshot file yields an
// empty corpus with a logged warning, not an error: the assistant still
// serves chat, it just answers with the "no data in knowledge base"
// placeholder for that language.
func LoadStore(ruPath, kkPath string, logger *slog.Logger) *Store {
	ru := loadSnapshot(ruPath, logger)
	logger.Info("Russian knowledge base loaded", slog.Int("chunks", len(ru)))

	kk := loadSnapshot(kkPath, logger)
	logger.Info("Kazakh knowledge base loaded", slog.Int("chunks", len(kk)))

	return NewStore(ru, kk)
}

// Corpus returns the immutable corpus for the given language. Callers must
// not mutate the returned slice.
func (s *Store) Corpus(lang domain.Language) []domain.KnowledgeChunk {
	return s.corpora[lang]
}

func loadSnapshot(path string, logger *slog.Logger) []domain.KnowledgeChunk {
	chunks, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Knowledge base snapshot not found, run cmd/kb_ingest to create it", slog.String("path", path))
		} else {
			logger.Warn("Failed to load knowledge base snapshot", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil
	}
	return chunks
}

// LoadSnapshot reads one serialized snapshot file.
func LoadSnapshot(path string) ([]domain.KnowledgeChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var chunks []domain.KnowledgeChunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return chunks, nil
}
