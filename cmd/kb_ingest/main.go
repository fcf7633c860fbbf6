// Command kb_ingest turns a scraped knowledge base into an embedded
// snapshot the server loads at startup. Each language has its own
// input/output pair; both are processed in one run.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	openaiadapter "github.com/Max-Ceph/zaman-hacknu/internal/adapters/llm/openai"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/ingest"
	"github.com/Max-Ceph/zaman-hacknu/pkg/config"
)

type languageConfig struct {
	language   domain.Language
	inputFile  string
	outputFile string
}

type pageRecord struct {
	SourceURL string `json:"source_url"`
	Content   string `json:"content"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	llm := openaiadapter.NewClient(cfg.OpenAIAPIKey, cfg.ChatModel, cfg.EmbeddingModel, cfg.MaxTokens, cfg.Temperature)

	configs := []languageConfig{
		{language: domain.LanguageRussian, inputFile: "knowledge_base.json", outputFile: cfg.KnowledgeBaseRU},
		{language: domain.LanguageKazakh, inputFile: "knowledge_base_kk.json", outputFile: cfg.KnowledgeBaseKK},
	}

	ctx := context.Background()
	for _, lc := range configs {
		if err := ingestLanguage(ctx, logger, llm, lc); err != nil {
			logger.Error("Ingestion failed", slog.String("language", string(lc.language)), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func ingestLanguage(ctx context.Context, logger *slog.Logger, llm *openaiadapter.Client, lc languageConfig) error {
	data, err := os.ReadFile(lc.inputFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Input knowledge base not found, skipping language",
				slog.String("language", string(lc.language)), slog.String("file", lc.inputFile))
			return nil
		}
		return err
	}

	var pages []pageRecord
	if err := json.Unmarshal(data, &pages); err != nil {
		return err
	}

	var chunks []domain.KnowledgeChunk
	for _, page := range pages {
		for _, window := range ingest.ChunkText(page.Content, ingest.DefaultChunkSize, ingest.DefaultChunkOverlap) {
			// The embedding API behaves better on single-line input.
			text := strings.ReplaceAll(window, "\n", " ")
			vector, err := llm.Embed(ctx, text)
			if err != nil {
				return err
			}
			chunks = append(chunks, domain.KnowledgeChunk{
				Source:  page.SourceURL,
				Content: window,
				Vector:  vector,
			})
			// Stay under the embedding endpoint's request rate.
			time.Sleep(100 * time.Millisecond)
		}
	}

	out, err := json.Marshal(chunks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(lc.outputFile, out, 0o644); err != nil {
		return err
	}

	logger.Info("Snapshot written",
		slog.String("language", string(lc.language)),
		slog.String("file", lc.outputFile),
		slog.Int("chunks", len(chunks)))
	return nil
}
