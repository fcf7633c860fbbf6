package services

import (
	"strings"

	"github.com/Max-Ceph/zaman-hacknu/internal/core/domain"
	"github.com/pemistahl/lingua-go"
)

// kazakhExclusiveChars are letters that exist in the Kazakh alphabet but not
// in Russian; any one of them is an unambiguous signal.
const kazakhExclusiveChars = "ӘәІіҢңҒғҮүҰұҚқӨөҺһ"

var russianMarkers = []string{
	"хочу", "нужно", "нужен", "нужна", "можно", "скажи", "расскажи",
	"открыть", "закрыть", "получить", "взять", "оформить",
	"какой", "какая", "какие", "который", "где", "когда", "почему",
	"это", "что", "как", "мне", "меня", "тебя", "вас",
	"банк", "счет", "карту", "кредит", "займ",
}

var kazakhMarkers = []string{
	"қалай", "неше", "қандай", "маған", "саған", "сізге",
	"керек", "тиіс", "үшін", "туралы", "арқылы", "бойынша",
	"қайда", "қашан", "неге", "себебі",
	"алайын", "берейін", "жасайын", "ашайын",
	"банкте", "шот", "аламын", "қаржы", "несие",
}

var kazakhProductTriggers = []string{
	"карта аш", "карта алайын", "карта керек", "карта ашу", "карта алғым",
	"депозит аш", "депозит ашайын", "депозит керек", "депозит ашу", "депозит алғым",
	"несие ал", "несие алайын", "несие керек", "несие алу", "несие алғым",
	"кредит ал", "кредит алайын", "кредит керек", "кредит алу", "кредит алғым",
	"шот аш", "шот ашайын", "шот керек", "шот ашу", "шот алғым",
	"өтінім беру", "өтінім жасау", "рәсімдеу",
	"тіркелу", "тіркелгім келеді", "тіркелгім",
}

var russianProductTriggers = []string{
	"открыть карт", "открою карт", "хочу карт", "нужна карт", "оформить карт", "карту открыть",
	"открыть депозит", "открою депозит", "хочу депозит", "нужен депозит", "оформить депозит", "депозит открыть",
	"взять кредит", "возьму кредит", "хочу кредит", "нужен кредит", "оформить кредит", "кредит взять",
	"взять заем", "взять займ", "получить заем", "оформить заем",
	"открыть счет", "открою счет", "хочу счет", "нужен счет", "счет открыть",
	"подать заявку", "оформить заявку", "оформить продукт",
	"зарегистрироваться", "регистрация", "стать клиентом",
	"давай откро", "давай оформ", "давай возьм", "давай созда",
	"помоги открыть", "помоги оформить", "помоги получить",
}

var analyticsKeywords = []string{
	"анализ", "расход", "трат", "статистик", "аналитик", "где я трачу",
	"на что уходит", "сколько трачу", "мои траты",
}

// LanguageService classifies message language and intent. All scans are
// case-insensitive substring matches with no tokenization; a keyword may
// match inside a longer word.
type LanguageService struct {
	detector lingua.LanguageDetector
}

// NewLanguageService builds the service. The statistical fallback detector
// is restricted to Russian and Kazakh, which makes it deterministic:
// repeated calls on the same input always classify identically.
func NewLanguageService() *LanguageService {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Russian, lingua.Kazakh).
		WithPreloadedLanguageModels().
		Build()
	return &LanguageService{detector: detector}
}

// DetectLanguage classifies text as Russian or Kazakh. Kazakh-exclusive
// letters win outright; then fixed marker lists are scored; the statistical
// detector is only a last resort, defaulting to Russian.
func (s *LanguageService) DetectLanguage(text string) domain.Language {
	if strings.ContainsAny(text, kazakhExclusiveChars) {
		return domain.LanguageKazakh
	}

	textLower := strings.ToLower(text)

	ruScore := 0
	for _, marker := range russianMarkers {
		if strings.Contains(textLower, marker) {
			ruScore++
		}
	}
	kkScore := 0
	for _, marker := range kazakhMarkers {
		if strings.Contains(textLower, marker) {
			kkScore++
		}
	}

	if ruScore >= 2 && kkScore == 0 {
		return domain.LanguageRussian
	}
	if kkScore >= 1 {
		return domain.LanguageKazakh
	}
	if ruScore >= 1 {
		return domain.LanguageRussian
	}

	if detected, ok := s.detector.DetectLanguageOf(text); ok && detected == lingua.Kazakh {
		return domain.LanguageKazakh
	}
	return domain.LanguageRussian
}

// DetectProductIntent reports whether the message expresses intent to open a
// financial product, using the trigger list of the detected language.
func (s *LanguageService) DetectProductIntent(message string, lang domain.Language) bool {
	messageLower := strings.ToLower(message)

	triggers := russianProductTriggers
	if lang == domain.LanguageKazakh {
		triggers = kazakhProductTriggers
	}

	for _, trigger := range triggers {
		if strings.Contains(messageLower, trigger) {
			return true
		}
	}
	return false
}

// WantsAnalytics reports whether the message asks about spending analytics.
func (s *LanguageService) WantsAnalytics(message string) bool {
	messageLower := strings.ToLower(message)
	for _, keyword := range analyticsKeywords {
		if strings.Contains(messageLower, keyword) {
			return true
		}
	}
	return false
}
