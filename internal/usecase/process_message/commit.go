package process_message

import (
	"context"
	"fmt"
	"strings"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

// commit создает запись по черновику. Цена и длительность пересчитываются
// по актуальному каталогу внутри одной сериализуемой транзакции с вставкой.
// Если выбранная услуга к этому моменту отключена, запись не создается.
func (uc *UseCase) commit(ctx context.Context, conv *domain.Conversation) (*domain.Appointment, error) {
	var created *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		services, err := uc.catalog.ListActiveServices(txCtx, conv.BarbershopID)
		if err != nil {
			return fmt.Errorf("%w: commit - list services: %v", ErrInternal, err)
		}

		totals := computeTotals(services, conv.Draft.ServiceIDs)
		if len(totals.missing) > 0 {
			return fmt.Errorf("%w: commit - services %s", ErrServiceUnavailable, strings.Join(totals.missing, ", "))
		}

		appointment, err := buildAppointment(conv, totals)
		if err != nil {
			return err
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: commit - create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func buildAppointment(conv *domain.Conversation, totals bookingTotals) (*domain.Appointment, error) {
	end, err := totals.endTime(conv.Draft.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: commit - end time: %v", ErrIncompleteDraft, err)
	}

	return &domain.Appointment{
		BarbershopID:    conv.BarbershopID,
		BarberID:        conv.Draft.BarberID,
		ClientID:        conv.ClientID,
		ServiceIDs:      append([]string(nil), conv.Draft.ServiceIDs...),
		Date:            conv.Draft.Date,
		StartTime:       conv.Draft.Time,
		EndTime:         end,
		DurationMinutes: totals.totalMinutes,
		TotalPrice:      totals.totalPrice,
		Status:          domain.StatusScheduled,
		PaymentStatus:   domain.PaymentPending,
	}, nil
}

func confirmedReply(conv *domain.Conversation) Reply {
	return Reply{
		Content: msgBookingConfirmed,
		Type:    domain.MessageAppointmentConfirmed,
		AppointmentData: &domain.AppointmentData{
			Date:       conv.Draft.Date.Format(domain.DateFormat),
			Time:       conv.Draft.Time.String(),
			ServiceIDs: append([]string(nil), conv.Draft.ServiceIDs...),
			BarberID:   conv.Draft.BarberID,
		},
	}
}
