package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	portsrepo "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/repositories"
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/dto"
	"github.com/Max-Ceph/zaman-hacknu/internal/knowledge"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
)

const (
	// retrievalTopK is how many knowledge chunks feed the prompt.
	retrievalTopK = 2
	// historyLimit is how many prior messages feed the prompt.
	historyLimit = 3
)

// ChatService is the conversation orchestrator. Per request it runs:
// language detection, intent check, optional analytics, retrieval over the
// language's corpus, prompt assembly, the model call, and persistence of
// the exchange. It is the single boundary translating internal failures
// into a localized fallback reply; callers never see a raw error.
type ChatService struct {
	language  *LanguageService
	analytics *AnalyticsService
	retrieval *RetrievalService
	prompts   *PromptBuilder
	store     *knowledge.Store

	embedder  portssvc.Embedder
	completer portssvc.Completer

	userRepo portsrepo.UserRepository
	accRepo  portsrepo.AccountRepository
	goalRepo portsrepo.GoalRepository
	chatRepo portsrepo.ChatHistoryRepository

	bankURL string
}

// Ensure ChatService implements the ChatSvc interface
var _ portssvc.ChatSvc = (*ChatService)(nil)

// NewChatService wires the orchestrator.
func NewChatService(
	language *LanguageService,
	analytics *AnalyticsService,
	retrieval *RetrievalService,
	prompts *PromptBuilder,
	store *knowledge.Store,
	embedder portssvc.Embedder,
	completer portssvc.Completer,
	userRepo portsrepo.UserRepository,
	accRepo portsrepo.AccountRepository,
	goalRepo portsrepo.GoalRepository,
	chatRepo portsrepo.ChatHistoryRepository,
	bankURL string,
) *ChatService {
	return &ChatService{
		language:  language,
		analytics: analytics,
		retrieval: retrieval,
		prompts:   prompts,
		store:     store,
		embedder:  embedder,
		completer: completer,
		userRepo:  userRepo,
		accRepo:   accRepo,
		goalRepo:  goalRepo,
		chatRepo:  chatRepo,
		bankURL:   bankURL,
	}
}

// Respond answers one chat message. It never returns an error: any failure
// along the pipeline is logged and degraded to an apology in the last-known
// language with open_bank_site=false.
func (s *ChatService) Respond(ctx context.Context, userID, message string) dto.ChatResponse {
	// Default before detection so even a failure inside detection still
	// produces a localized message.
	lang := domain.LanguageRussian

	resp, err := s.respond(ctx, userID, message, &lang)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Chat pipeline failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return fallbackResponse(lang)
	}
	return resp
}

func (s *ChatService) respond(ctx context.Context, userID, message string, lang *domain.Language) (dto.ChatResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	*lang = s.language.DetectLanguage(message)
	logger.Info("Language detected", slog.String("language", string(*lang)))

	productIntent := s.language.DetectProductIntent(message, *lang)
	if productIntent {
		logger.Info("Product-opening intent detected")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	accounts, err := s.accRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to load accounts: %w", err)
	}
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to load goals: %w", err)
	}

	analyticsNarrative := ""
	if s.language.WantsAnalytics(message) {
		logger.Info("Analytics requested in message")
		analysis, err := s.analytics.AnalyzeSpendingHabits(ctx, userID)
		if err != nil {
			return dto.ChatResponse{}, err
		}
		if analysis != nil {
			recommendations := s.analytics.GenerateRecommendations(analysis, goals)
			analyticsNarrative = s.prompts.AnalyticsNarrative(*lang, analysis, recommendations)
		}
	}

	history, err := s.chatRepo.LastMessages(ctx, userID, historyLimit)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to load chat history: %w", err)
	}
	// Newest-first from the repository; the prompt wants oldest first.
	reverseMessages(history)

	queryVector, err := s.embedder.Embed(ctx, message)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("embedding failed: %w", err)
	}

	corpus := s.store.Corpus(*lang)
	chunks := s.retrieval.FindRelevant(queryVector, corpus, retrievalTopK)
	logger.Info("Knowledge base searched", slog.Int("chunks_found", len(chunks)))

	systemPrompt, userPrompt := s.prompts.Build(PromptInput{
		Language:           *lang,
		FirstName:          user.Profile.FirstName,
		Accounts:           accounts,
		Goals:              goals,
		AnalyticsNarrative: analyticsNarrative,
		History:            history,
		Chunks:             chunks,
		Message:            message,
		ProductIntent:      productIntent,
		Now:                time.Now(),
	})

	reply, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return dto.ChatResponse{}, fmt.Errorf("completion failed: %w", err)
	}
	reply = stripEmphasis(reply)

	now := time.Now().UTC()
	if err := s.chatRepo.SaveMessage(ctx, domain.ChatMessage{
		UserID:    userID,
		Role:      domain.ChatRoleUser,
		Message:   message,
		Timestamp: now,
	}); err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to persist user turn: %w", err)
	}
	if err := s.chatRepo.SaveMessage(ctx, domain.ChatMessage{
		UserID:    userID,
		Role:      domain.ChatRoleAssistant,
		Message:   reply,
		Timestamp: now,
	}); err != nil {
		return dto.ChatResponse{}, fmt.Errorf("failed to persist assistant turn: %w", err)
	}

	resp := dto.ChatResponse{
		Reply:        reply,
		OpenBankSite: productIntent,
	}
	if productIntent {
		bankURL := s.bankURL
		resp.BankURL = &bankURL
	}
	return resp, nil
}

// fallbackResponse is the localized apology used whenever the pipeline
// fails. open_bank_site is always false on the failure path.
func fallbackResponse(lang domain.Language) dto.ChatResponse {
	reply := "Извините, произошла ошибка. Пожалуйста, попробуйте еще раз."
	if lang == domain.LanguageKazakh {
		reply = "Кешіріңіз, қате пайда болды. Қайта көріңізші."
	}
	return dto.ChatResponse{Reply: reply, OpenBankSite: false, BankURL: nil}
}

// EmptyMessageResponse is what the chat endpoint returns for a blank
// message; the chat surface never answers with an HTTP error.
func EmptyMessageResponse() dto.ChatResponse {
	return dto.ChatResponse{Reply: "Пожалуйста, напишите что-нибудь.", OpenBankSite: false, BankURL: nil}
}

// stripEmphasis removes markdown emphasis markers the model occasionally
// emits despite instructions.
func stripEmphasis(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	return strings.ReplaceAll(text, "*", "")
}

func reverseMessages(msgs []domain.ChatMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
