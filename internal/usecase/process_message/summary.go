package process_message

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	"github.com/brunocamarg0/trim-squire/pkg/types"
)

// bookingTotals итоги по выбранным услугам
type bookingTotals struct {
	services     []*domain.Service
	missing      []string
	totalPrice   float64
	totalMinutes int
}

// computeTotals суммирует цену и длительность выбранных услуг.
// ID, отсутствующие в каталоге, попадают в missing.
func computeTotals(catalog []*domain.Service, serviceIDs []string) bookingTotals {
	byID := make(map[string]*domain.Service, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	var totals bookingTotals
	for _, id := range serviceIDs {
		s, ok := byID[id]
		if !ok {
			totals.missing = append(totals.missing, id)
			continue
		}
		totals.services = append(totals.services, s)
		totals.totalPrice += s.Price
		totals.totalMinutes += s.DurationMinutes
	}
	return totals
}

func (t bookingTotals) names() string {
	names := make([]string, len(t.services))
	for i, s := range t.services {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// endTime время окончания, с переходом через полночь
func (t bookingTotals) endTime(start types.TimeString) (types.TimeString, error) {
	return start.AddMinutes(t.totalMinutes)
}

// summaryText собирает итог записи по свежим данным справочника
func (m *Machine) summaryText(ctx context.Context, conv *domain.Conversation) (string, error) {
	services, err := m.catalog.ListActiveServices(ctx, conv.BarbershopID)
	if err != nil {
		return "", fmt.Errorf("list services: %w", err)
	}

	barbers, err := m.catalog.ListActiveBarbers(ctx, conv.BarbershopID)
	if err != nil {
		return "", fmt.Errorf("list barbers: %w", err)
	}

	totals := computeTotals(services, conv.Draft.ServiceIDs)

	barberName := msgBarberUnspecified
	for _, b := range barbers {
		if b.ID == conv.Draft.BarberID {
			barberName = b.Name
			break
		}
	}

	end, err := totals.endTime(conv.Draft.Time)
	if err != nil {
		return "", fmt.Errorf("end time: %w", err)
	}

	return fmt.Sprintf(msgSummary,
		totals.names(),
		barberName,
		formatLongDate(conv.Draft.Date),
		conv.Draft.Time,
		end,
		totals.totalPrice,
	), nil
}
