package services

import "context"

// Embedder converts a single text into a fixed-length vector. Remote and
// fallible; callers treat any error as a whole-request failure.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Completer invokes the hosted language model with a system and user prompt
// and returns the raw completion text.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Transcriber converts an uploaded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}
