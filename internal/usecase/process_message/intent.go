package process_message

import "strings"

// Intent намерение клиента, распознанное по ключевым словам
type Intent string

const (
	IntentNone         Intent = "none"
	IntentGreeting     Intent = "greeting"
	IntentBooking      Intent = "booking_intent"
	IntentCancellation Intent = "cancellation_intent"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// Правила проверяются по порядку, побеждает первое совпадение
var intentRules = []intentRule{
	{
		intent:   IntentGreeting,
		keywords: []string{"oi", "olá", "ola", "bom dia", "boa tarde", "boa noite", "hi", "hello", "e aí"},
	},
	{
		intent:   IntentBooking,
		keywords: []string{"agendar", "marcar", "horário", "horario", "agendamento", "corte", "serviço", "servico", "quero"},
	},
	{
		intent:   IntentCancellation,
		keywords: []string{"cancelar", "desmarcar", "remover agendamento"},
	},
}

var (
	affirmativeKeywords = []string{"sim", "confirmar", "ok"}
	negativeKeywords    = []string{"não", "nao", "cancelar"}
)

// ClassifyIntent определяет намерение по вхождению ключевых слов в сообщение
func ClassifyIntent(message string) Intent {
	normalized := normalize(message)
	for _, rule := range intentRules {
		if containsAny(normalized, rule.keywords) {
			return rule.intent
		}
	}
	return IntentNone
}

func normalize(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
