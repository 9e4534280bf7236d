package process_message

import (
	"fmt"
	"strings"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// Тексты ответов ассистента
const (
	msgGreeting = "Olá %s! 👋\n\nComo posso ajudar você hoje? Você pode:\n• Agendar um serviço\n• Ver seus agendamentos\n• Cancelar um agendamento\n\nO que você gostaria de fazer?"

	msgNoServices   = "Desculpe, não há serviços disponíveis no momento. Entre em contato diretamente com a barbearia."
	msgServiceList  = "Ótimo! Vou ajudar você a agendar. Primeiro, qual serviço você gostaria?\n\n%s\n\nPor favor, digite o número ou o nome do serviço desejado."
	msgStartFailed  = "Desculpe, ocorreu um erro. Tente novamente mais tarde."
	msgGenericError = "Desculpe, ocorreu um erro. Tente novamente."

	msgServiceNotFound = "Não encontrei esse serviço. Por favor, digite o número ou o nome correto do serviço."
	msgAskDate         = "Ótimo! Agora preciso saber a data. Por favor, digite a data desejada (ex: 25/12/2024 ou amanhã, ou hoje)."

	msgInvalidDate = "Data inválida. Por favor, digite a data no formato DD/MM/AAAA (ex: 25/12/2024) ou use \"hoje\" ou \"amanhã\"."
	msgPastDate    = "A data não pode ser no passado. Por favor, escolha uma data futura."
	msgAskTime     = "Perfeito! Data escolhida: %s.\n\nAgora preciso saber o horário. Por favor, digite o horário desejado (ex: 14:30 ou 14h30)."

	msgInvalidTimeFormat = "Horário inválido. Por favor, digite no formato HH:MM (ex: 14:30)."
	msgInvalidTimeRange  = "Horário inválido. Por favor, digite um horário válido (ex: 09:00, 14:30, 18:00)."
	msgNoBarbers         = "Desculpe, não há barbeiros disponíveis no momento."
	msgBarberList        = "Horário escolhido: %s.\n\nQual barbeiro você prefere?\n\n%s\n\nDigite o número ou o nome do barbeiro."

	msgBarberNotFound = "Não encontrei esse barbeiro. Por favor, digite o número ou o nome correto."

	msgSummary = "📅 **Resumo do Agendamento:**\n\n📋 Serviço(s): %s\n👤 Barbeiro: %s\n📅 Data: %s\n⏰ Horário: %s - %s\n💰 Total: R$ %.2f\n\nConfirma o agendamento? (sim/não)"

	msgBarberUnspecified = "Não especificado"

	msgBookingConfirmed = "✅ Agendamento confirmado com sucesso!\n\nO agendamento foi criado e será revisado pela barbearia. Você receberá uma confirmação em breve."
	msgCommitFailed     = "Desculpe, ocorreu um erro ao criar o agendamento. Entre em contato diretamente com a barbearia."
	msgBookingAborted   = "Agendamento cancelado. Se precisar de algo mais, é só avisar! 😊"
	msgAnswerYesOrNo    = "Por favor, responda \"sim\" para confirmar ou \"não\" para cancelar."

	msgCancellationInfo = "Para cancelar um agendamento, você precisa entrar em contato diretamente com a barbearia pelo telefone ou email. Desculpe pelo inconveniente."

	msgUnknown = "Desculpe, não entendi. Você pode:\n• Agendar um serviço (digite \"agendar\")\n• Ver seus agendamentos\n• Cancelar um agendamento\n\nComo posso ajudar?"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// formatDayMonth форматирует дату как "25 de dezembro"
func formatDayMonth(t time.Time) string {
	return fmt.Sprintf("%02d de %s", t.Day(), monthNames[t.Month()-1])
}

// formatLongDate форматирует дату как "25 de dezembro de 2024"
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s de %d", formatDayMonth(t), t.Year())
}

func greetingText(clientName string) string {
	return fmt.Sprintf(msgGreeting, clientName)
}

func serviceListText(services []*domain.Service) string {
	lines := make([]string, 0, len(services))
	for i, s := range services {
		lines = append(lines, fmt.Sprintf("%d. %s - R$ %.2f", i+1, s.Name, s.Price))
	}
	return fmt.Sprintf(msgServiceList, strings.Join(lines, "\n"))
}

func askTimeText(date time.Time) string {
	return fmt.Sprintf(msgAskTime, formatDayMonth(date))
}

func barberListText(chosen string, barbers []*domain.Barber) string {
	lines := make([]string, 0, len(barbers))
	for i, b := range barbers {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, b.Name))
	}
	return fmt.Sprintf(msgBarberList, chosen, strings.Join(lines, "\n"))
}
