package services

import (
	"math"
	"sort"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
)

// RetrievalService ranks knowledge chunks against a query vector. The scan
// is brute-force O(n) per query, which is fine at the corpus sizes involved
// (tens to hundreds of chunks); the corpus is always passed explicitly so
// tests can use synthetic corpora.
type RetrievalService struct{}

// NewRetrievalService creates a new RetrievalService.
func NewRetrievalService() *RetrievalService {
	return &RetrievalService{}
}

// FindRelevant returns the topK chunks most similar to the query vector,
// ordered by descending cosine similarity. Ties keep the original corpus
// order. An empty corpus yields an empty result.
func (s *RetrievalService) FindRelevant(queryVector []float64, corpus []domain.KnowledgeChunk, topK int) []domain.RetrievedChunk {
	if len(corpus) == 0 || topK <= 0 {
		return nil
	}

	type scored struct {
		similarity float64
		index      int
	}

	scores := make([]scored, len(corpus))
	for i, chunk := range corpus {
		scores[i] = scored{similarity: cosineSimilarity(queryVector, chunk.Vector), index: i}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].similarity > scores[j].similarity
	})

	if topK > len(scores) {
		topK = len(scores)
	}

	results := make([]domain.RetrievedChunk, 0, topK)
	for _, sc := range scores[:topK] {
		results = append(results, domain.RetrievedChunk{
			Content: corpus[sc.index].Content,
			Source:  corpus[sc.index].Source,
		})
	}
	return results
}

// cosineSimilarity computes dot(a,b) / (|a|*|b|). A zero-norm vector makes
// the ratio undefined; such chunks rank below everything instead of
// crashing the request.
func cosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}

	if normA == 0 || normB == 0 {
		return math.Inf(-1)
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
