package services_test

import (
	"testing"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// almaty pins a moment to the reference timezone (UTC+5).
func almaty(hour int) time.Time {
	return time.Date(2026, 8, 20, hour, 0, 0, 0, time.FixedZone("ALMT", 5*60*60))
}

func TestTimeGreeting_Buckets(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	cases := []struct {
		hour int
		ru   string
		kk   string
	}{
		{5, "Доброе утро", "Қайырлы таң"},
		{11, "Доброе утро", "Қайырлы таң"},
		{12, "Добрый день", "Қайырлы күн"},
		{16, "Добрый день", "Қайырлы күн"},
		{17, "Добрый вечер", "Қайырлы кеш"},
		{21, "Добрый вечер", "Қайырлы кеш"},
		{22, "Доброй ночи", "Қайырлы түн"},
		{3, "Доброй ночи", "Қайырлы түн"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ru, b.TimeGreeting(domain.LanguageRussian, almaty(tc.hour)), "hour %d", tc.hour)
		assert.Equal(t, tc.kk, b.TimeGreeting(domain.LanguageKazakh, almaty(tc.hour)), "hour %d", tc.hour)
	}
}

func TestTimeGreeting_ConvertsToReferenceZone(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	// 04:00 UTC is 09:00 in Almaty: morning, not night.
	utcMorning := time.Date(2026, 8, 20, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "Доброе утро", b.TimeGreeting(domain.LanguageRussian, utcMorning))
}

func TestBuild_RussianPromptContainsContexts(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	systemPrompt, userPrompt := b.Build(services.PromptInput{
		Language:  domain.LanguageRussian,
		FirstName: "Айгерим",
		Accounts: []domain.Account{
			{AccountName: "Основной счет", Balance: decimal.RequireFromString("150000.5"), Currency: "KZT"},
		},
		Goals: []domain.Goal{
			{GoalName: "Отпуск в Турции", CurrentAmount: decimal.NewFromInt(125000), TargetAmount: decimal.NewFromInt(500000)},
		},
		Chunks: []domain.RetrievedChunk{
			{Content: "Карта Zaman дает кэшбэк 2%.", Source: "https://www.zamanbank.kz/ru/cards/"},
			{Content: "Депозит до 15% годовых.", Source: "https://www.zamanbank.kz/ru/deposits/"},
		},
		Message: "Какие карты есть?",
		Now:     almaty(10),
	})

	assert.Contains(t, systemPrompt, "Амир")
	assert.Contains(t, systemPrompt, "ТОЛЬКО на русском")

	assert.Contains(t, userPrompt, "Имя: Айгерим")
	assert.Contains(t, userPrompt, "Основной счет")
	assert.Contains(t, userPrompt, "Отпуск в Турции")
	assert.Contains(t, userPrompt, "Карта Zaman дает кэшбэк 2%.")
	assert.Contains(t, userPrompt, "Депозит до 15% годовых.")
	assert.Contains(t, userPrompt, "КОНТЕКСТ ИЗ БАЗЫ ЗНАНИЙ:")
	assert.Contains(t, userPrompt, "Какие карты есть?")
	assert.Contains(t, userPrompt, "Ответь на русском языке.")
}

func TestBuild_KazakhPromptLocalized(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	systemPrompt, userPrompt := b.Build(services.PromptInput{
		Language:  domain.LanguageKazakh,
		FirstName: "Арман",
		Message:   "Қандай карталар бар?",
		Now:       almaty(10),
	})

	assert.Contains(t, systemPrompt, "Әмір")
	assert.Contains(t, userPrompt, "БІЛІМ БАЗАСЫНАН АЛЫНҒАН КОНТЕКСТ:")
	assert.Contains(t, userPrompt, "Жауапты қазақ тілінде бер.")
	// Empty corpus falls back to the localized placeholder.
	assert.Contains(t, userPrompt, "Білім базасында деректер жоқ.")
}

func TestBuild_GreetingOnlyOnFirstContact(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	in := services.PromptInput{
		Language:  domain.LanguageRussian,
		FirstName: "Айгерим",
		Message:   "привет",
		Now:       almaty(10),
	}

	_, firstContact := b.Build(in)
	assert.Contains(t, firstContact, "Доброе утро, Айгерим!")

	in.History = []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Message: "привет"},
		{Role: domain.ChatRoleAssistant, Message: "Доброе утро, Айгерим!"},
	}
	_, followUp := b.Build(in)
	assert.NotContains(t, followUp, "Это первый контакт")
	assert.Contains(t, followUp, "Клиент: привет")
	assert.Contains(t, followUp, "Амир: Доброе утро, Айгерим!")
}

func TestBuild_MissingNameFallsBackToFriend(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	_, userPrompt := b.Build(services.PromptInput{
		Language: domain.LanguageRussian,
		Message:  "привет",
		Now:      almaty(10),
	})

	assert.Contains(t, userPrompt, "Имя: друг")
	assert.Contains(t, userPrompt, "Доброе утро, друг!")
}

func TestBuild_NoAccountsOrGoals(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	_, userPrompt := b.Build(services.PromptInput{
		Language:  domain.LanguageRussian,
		FirstName: "Айгерим",
		Message:   "привет",
		Now:       almaty(10),
	})

	assert.Contains(t, userPrompt, "У клиента пока нет счетов или целей.")
}

func TestBuild_ProductInstruction(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	systemPrompt, _ := b.Build(services.PromptInput{
		Language:      domain.LanguageRussian,
		Message:       "хочу открыть карту",
		ProductIntent: true,
		Now:           almaty(10),
	})
	assert.Contains(t, systemPrompt, "перенаправлю вас на сайт Zaman Bank")

	systemPrompt, _ = b.Build(services.PromptInput{
		Language: domain.LanguageRussian,
		Message:  "какая комиссия",
		Now:      almaty(10),
	})
	assert.NotContains(t, systemPrompt, "перенаправлю")
}

func TestAnalyticsNarrative(t *testing.T) {
	b := services.NewPromptBuilder("Asia/Almaty")

	analysis := &domain.SpendingAnalysis{
		TotalExpenses: 229100,
		TopCategory:   "Продукты",
	}

	ru := b.AnalyticsNarrative(domain.LanguageRussian, analysis, "совет")
	assert.Contains(t, ru, "### АНАЛИЗ РАСХОДОВ КЛИЕНТА:")
	assert.Contains(t, ru, "229,100₸")
	assert.Contains(t, ru, "Топ категория: Продукты")
	assert.Contains(t, ru, "совет")

	kk := b.AnalyticsNarrative(domain.LanguageKazakh, analysis, "")
	assert.Contains(t, kk, "### КЛИЕНТТІҢ ШЫҒЫСТАРЫ ТАЛДАУЫ:")
	assert.NotContains(t, kk, "ұсыныстар")

	assert.Equal(t, "", b.AnalyticsNarrative(domain.LanguageRussian, nil, "совет"))
}
