package domain

// Language identifies one of the two supported reply languages.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageKazakh  Language = "kk"
)

// KnowledgeChunk is one embedded fragment of the knowledge base. Chunks are
// produced by the offline ingestion pipeline, loaded wholesale at process
// start, and never mutated at runtime.
type KnowledgeChunk struct {
	Source  string    `json:"source"`
	Content string    `json:"content"`
	Vector  []float64 `json:"vector"`
}

// RetrievedChunk is a retrieval result with the similarity score dropped.
type RetrievedChunk struct {
	Content string
	Source  string
}
