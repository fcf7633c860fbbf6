package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/Max-Ceph/zaman-hacknu/internal/utils"
)

// PromptInput is everything the prompt builder needs for one exchange. The
// builder is a pure function of this input; it performs no I/O.
type PromptInput struct {
	Language  domain.Language
	FirstName string
	Accounts  []domain.Account
	Goals     []domain.Goal
	// AnalyticsNarrative is the pre-rendered analytics block; empty when the
	// message did not ask for analytics or the analysis is absent.
	AnalyticsNarrative string
	// History holds up to the last 3 exchanges, oldest first.
	History       []domain.ChatMessage
	Chunks        []domain.RetrievedChunk
	Message       string
	ProductIntent bool
	Now           time.Time
}

// PromptBuilder assembles the system and user prompts for the language
// model, branching on the detected language.
type PromptBuilder struct {
	location *time.Location
}

// NewPromptBuilder creates a builder using the given reference timezone for
// greeting buckets. When the zone cannot be loaded (containers without
// tzdata), a fixed UTC+5 zone stands in for Almaty.
func NewPromptBuilder(timezone string) *PromptBuilder {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.FixedZone("ALMT", 5*60*60)
	}
	return &PromptBuilder{location: location}
}

// Build renders the system instructions and the user-facing prompt text.
func (b *PromptBuilder) Build(in PromptInput) (systemPrompt, userPrompt string) {
	personalContext := b.personalContext(in)
	historyContext := b.historyContext(in.History)
	knowledgeContext := b.knowledgeContext(in.Language, in.Chunks)
	productInstruction := b.productInstruction(in.Language, in.ProductIntent)
	greetingInstruction := b.greetingInstruction(in)

	if in.Language == domain.LanguageKazakh {
		systemPrompt = fmt.Sprintf(kazakhSystemPrompt, productInstruction)
		userPrompt = fmt.Sprintf(
			"%s%s%sБІЛІМ БАЗАСЫНАН АЛЫНҒАН КОНТЕКСТ:\n%s\n\nКЛИЕНТТІҢ АҒЫМДАҒЫ СҰРАҒЫ:\n%s\n\nНҰСҚАУ: Жауапты қазақ тілінде бер.",
			personalContext, historyContext, greetingInstruction, knowledgeContext, in.Message,
		)
		return systemPrompt, userPrompt
	}

	systemPrompt = fmt.Sprintf(russianSystemPrompt, productInstruction)
	userPrompt = fmt.Sprintf(
		"%s%s%sКОНТЕКСТ ИЗ БАЗЫ ЗНАНИЙ:\n%s\n\nТЕКУЩИЙ ВОПРОС КЛИЕНТА:\n%s\n\nИНСТРУКЦИЯ: Ответь на русском языке.",
		personalContext, historyContext, greetingInstruction, knowledgeContext, in.Message,
	)
	return systemPrompt, userPrompt
}

// TimeGreeting picks the greeting for the reference-timezone hour: early
// morning [5,12), day [12,17), evening [17,22), night otherwise.
func (b *PromptBuilder) TimeGreeting(lang domain.Language, now time.Time) string {
	hour := now.In(b.location).Hour()

	if lang == domain.LanguageKazakh {
		switch {
		case hour >= 5 && hour < 12:
			return "Қайырлы таң"
		case hour >= 12 && hour < 17:
			return "Қайырлы күн"
		case hour >= 17 && hour < 22:
			return "Қайырлы кеш"
		default:
			return "Қайырлы түн"
		}
	}

	switch {
	case hour >= 5 && hour < 12:
		return "Доброе утро"
	case hour >= 12 && hour < 17:
		return "Добрый день"
	case hour >= 17 && hour < 22:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

// AnalyticsNarrative renders the analytics block appended to the personal
// context when the user asked about spending.
func (b *PromptBuilder) AnalyticsNarrative(lang domain.Language, analysis *domain.SpendingAnalysis, recommendations string) string {
	if analysis == nil {
		return ""
	}

	var sb strings.Builder
	if lang == domain.LanguageKazakh {
		sb.WriteString("\n\n### КЛИЕНТТІҢ ШЫҒЫСТАРЫ ТАЛДАУЫ:\n")
		sb.WriteString(fmt.Sprintf("Жалпы шығыстар: %s₸\n", formatPromptAmount(analysis.TotalExpenses)))
		sb.WriteString(fmt.Sprintf("Ең көп шығын категориясы: %s\n", analysis.TopCategory))
		if recommendations != "" {
			sb.WriteString(fmt.Sprintf("\nПерсоналды ұсыныстар:\n%s\n", recommendations))
		}
		return sb.String()
	}

	sb.WriteString("\n\n### АНАЛИЗ РАСХОДОВ КЛИЕНТА:\n")
	sb.WriteString(fmt.Sprintf("Общие расходы за месяц: %s₸\n", formatPromptAmount(analysis.TotalExpenses)))
	sb.WriteString(fmt.Sprintf("Топ категория: %s\n", analysis.TopCategory))
	if recommendations != "" {
		sb.WriteString(fmt.Sprintf("\nПерсональные рекомендации:\n%s\n", recommendations))
	}
	return sb.String()
}

func (b *PromptBuilder) personalContext(in PromptInput) string {
	var sb strings.Builder

	firstName := in.FirstName
	if firstName == "" {
		firstName = "друг"
	}

	accountsHeader := "\nСчета клиента:\n"
	goalsHeader := "\nФинансовые цели клиента:\n"
	noDataMsg := "У клиента пока нет счетов или целей.\n"
	if in.Language == domain.LanguageKazakh {
		accountsHeader = "\nКлиенттің шоттары:\n"
		goalsHeader = "\nКлиенттің қаржылық мақсаттары:\n"
		noDataMsg = "Клиентте әлі шоттар немесе мақсаттар жоқ.\n"
	}

	sb.WriteString(fmt.Sprintf("### Персональные данные клиента:\nИмя: %s\n", firstName))
	if len(in.Accounts) == 0 && len(in.Goals) == 0 {
		sb.WriteString(noDataMsg)
	}
	if len(in.Accounts) > 0 {
		sb.WriteString(accountsHeader)
		for _, acc := range in.Accounts {
			sb.WriteString(fmt.Sprintf("- '%s' шоты, баланс: %s %s\n", acc.AccountName, acc.Balance.String(), acc.Currency))
		}
	}
	if len(in.Goals) > 0 {
		sb.WriteString(goalsHeader)
		for _, goal := range in.Goals {
			sb.WriteString(fmt.Sprintf("- '%s' мақсаты. Жиналған: %s / %s KZT\n", goal.GoalName, goal.CurrentAmount.String(), goal.TargetAmount.String()))
		}
	}
	sb.WriteString("###\n\n")

	sb.WriteString(in.AnalyticsNarrative)
	return sb.String()
}

func (b *PromptBuilder) historyContext(history []domain.ChatMessage) string {
	if len(history) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("### История предыдущих сообщений:\n")
	for _, msg := range history {
		role := "Амир"
		if msg.Role == domain.ChatRoleUser {
			role = "Клиент"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Message))
	}
	sb.WriteString("###\n\n")
	return sb.String()
}

func (b *PromptBuilder) knowledgeContext(lang domain.Language, chunks []domain.RetrievedChunk) string {
	if len(chunks) == 0 {
		if lang == domain.LanguageKazakh {
			return "Білім базасында деректер жоқ."
		}
		return "Нет данных в базе знаний."
	}

	contents := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		contents = append(contents, chunk.Content)
	}
	return strings.Join(contents, "\n\n")
}

// greetingInstruction tells the model to open with the time-of-day greeting,
// but only on first contact: the system prompt already forbids greeting on
// every turn.
func (b *PromptBuilder) greetingInstruction(in PromptInput) string {
	if len(in.History) > 0 {
		return ""
	}

	greeting := b.TimeGreeting(in.Language, in.Now)
	firstName := in.FirstName
	if firstName == "" {
		firstName = "друг"
	}

	if in.Language == domain.LanguageKazakh {
		return fmt.Sprintf("НҰСҚАУ: Бұл алғашқы байланыс. Жауапты \"%s, %s!\" деп сәлемдесуден баста.\n\n", greeting, firstName)
	}
	return fmt.Sprintf("ИНСТРУКЦИЯ: Это первый контакт. Начни ответ с приветствия \"%s, %s!\".\n\n", greeting, firstName)
}

func (b *PromptBuilder) productInstruction(lang domain.Language, productIntent bool) string {
	if !productIntent {
		return ""
	}
	if lang == domain.LanguageKazakh {
		return "\n\nМАҢЫЗДЫ: Клиент өнім ашқысы келеді. Оған өнім туралы қысқаша айтып, содан кейін: 'Мен сізді Zaman Bank сайтына бағыттап жатырмын, онда сіз өтінім жасай аласыз!' деп жаз."
	}
	return "\n\nВАЖНО: Клиент хочет открыть продукт. Расскажи ему кратко о продукте, а затем скажи: 'Сейчас я перенаправлю вас на сайт Zaman Bank, где вы сможете оформить заявку!'"
}

// formatPromptAmount matches the rendering used across the prompt and
// recommendation text: whole units with comma grouping.
func formatPromptAmount(amount float64) string {
	return utils.FormatMoney(amount)
}

const russianSystemPrompt = `Твоя роль: Ты — Амир, персональный финансовый наставник и психолог поддержки от Zaman Bank.

ВАЖНО: Отвечай ТОЛЬКО на русском языке!

Твои цели:
1. Помогать клиентам достигать финансовых целей
2. Предлагать альтернативы стресс-шопингу и импульсивным тратам
3. Предупреждать о вредных финансовых привычках
4. Мотивировать к развитию полезных привычек

Твой стиль общения:
- Общайся тепло, по-человечески, как заботливый друг.
- Обращайся к клиенту на "вы".
- Используй простой, понятный язык.

ПСИХОЛОГИЧЕСКАЯ ПОДДЕРЖКА:
- Если клиент тратит ночью (23:00-06:00), мягко предупреди об импульсивных покупках
- Предложи здоровые способы борьбы со стрессом: прогулки, медитация, звонок другу, спорт, хобби
- Отмечай успехи клиента и хвали прогресс
- Если видишь вредную привычку (много трат на развлечения), деликатно предложи альтернативу

Как отвечать:
✓ Используй персональные данные клиента для индивидуальных советов.
✓ Ссылайся на базу знаний для точной информации.
✓ Объясняй сложные термины простыми словами.
✓ Будь эмпатичным и поддерживающим
- НЕ здоровайся в каждом сообщении! Приветствие только при первом контакте.
✗ Не придумывай информацию, которой нет в базе знаний.
✗ НЕ используй ** или * символы!
✗ Отвечай только обычным текстом!%s`

const kazakhSystemPrompt = `Сенің рөлің: Сен — Әмір, Zaman Bank-тің жеке қаржы тілімгері және психологиялық қолдаушы.

МАҢЫЗДЫ: Жауапты ТӘУЕЛСІЗ қазақ тілінде беру керек. Ешбір орыс сөздерін қолданба!

Сенің мақсатың:
1. Клиенттің қаржылық мақсаттарына жетуге көмектесу
2. Стресспен күресу үшін альтернативалар ұсыну (тек сатып алу емес!)
3. Денсаулыққа шығындар туралы ескерту
4. Пайдалы әдеттерді дамытуға ынталандыру

Қарым-қатынас стилің:
- Жылы, адамгершілікпен сөйле, досыңдай.
- Клиентке "сіз" деп құрметпен жүгін.
- ТӘУЕЛСІЗ қарапайым, түсінікті қазақ тілін қолдан.

ПСИХОЛОГИЯЛЫҚ ҚОЛДАУ:
- Егер клиент түнде (23:00-06:00) көп шығындайтын болса, импульсивті сатып алулар туралы ескерт
- Стресспен күресудің тиімді жолдарын ұсын: серуендеу, медитация, досқа қоңырау шалу, спорт
- Клиенттің жетістіктерін атап өт және мадақта

Қалай жауап беру керек:
✓ Жеке деректерді пайдалан
✓ Білім базасына сүйен
✓ Күрделі терминдерді қарапайым сөзбен түсіндір
Әр хабарламада сәлемдеспе! Сәлемдесу тек алғашқы байланыста ғана.
✗ Білім базасында жоқ ақпаратты ойдан шығарма
✗ ЕШБІР ** немесе * белгілерін қолданба!
✗ Тек қарапайым мәтінмен жауап бер!%s`
