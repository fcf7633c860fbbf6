// Package openai adapts the hosted OpenAI API to the provider ports used by
// the chat pipeline: embeddings, chat completions and audio transcription.
package openai

import (
	"bytes"
	"context"
	"fmt"

	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/sashabaranov/go-openai"
)

// Client wraps one shared API client for all three provider roles.
type Client struct {
	api            *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	maxTokens      int
	temperature    float32
}

var (
	_ portssvc.Embedder    = (*Client)(nil)
	_ portssvc.Completer   = (*Client)(nil)
	_ portssvc.Transcriber = (*Client)(nil)
)

func NewClient(apiKey, chatModel, embeddingModel string, maxTokens int, temperature float32) *Client {
	return &Client{
		api:            openai.NewClient(apiKey),
		chatModel:      chatModel,
		embeddingModel: openai.EmbeddingModel(embeddingModel),
		maxTokens:      maxTokens,
		temperature:    temperature,
	}
}

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response has no data")
	}
	vector := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		vector[i] = float64(v)
	}
	return vector, nil
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("creating transcription: %w", err)
	}
	return resp.Text, nil
}
