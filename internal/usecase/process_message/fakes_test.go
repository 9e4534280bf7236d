package process_message

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

type fakeCatalog struct {
	services    []*domain.Service
	barbers     []*domain.Barber
	servicesErr error
	barbersErr  error
}

func (f *fakeCatalog) ListActiveServices(_ context.Context, _ string) ([]*domain.Service, error) {
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return f.services, nil
}

func (f *fakeCatalog) ListActiveBarbers(_ context.Context, _ string) ([]*domain.Barber, error) {
	if f.barbersErr != nil {
		return nil, f.barbersErr
	}
	return f.barbers, nil
}

type fakeAppointments struct {
	created []*domain.Appointment
	err     error
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	a.ID = fmt.Sprintf("appt-%d", len(f.created)+1)
	f.created = append(f.created, a)
	return a, nil
}

type fakeSender struct {
	mu       sync.Mutex
	messages []*domain.Message
	err      error
}

func (f *fakeSender) SendMessage(_ context.Context, m *domain.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, m)
	return fmt.Sprintf("msg-%d", len(f.messages)), nil
}

func (f *fakeSender) last() *domain.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return nil
	}
	return f.messages[len(f.messages)-1]
}

type fakeTxManager struct {
	calls        int
	serializable int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializable++
	return f.Do(ctx, fn)
}

type fakeMetrics struct {
	intents []string
	commits []string
}

func (f *fakeMetrics) ObserveInboundMessage(intent string) { f.intents = append(f.intents, intent) }
func (f *fakeMetrics) ObserveStep(string)                  {}
func (f *fakeMetrics) ObserveCommit(result string)         { f.commits = append(f.commits, result) }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type debugLogger struct {
	nopLogger
	debug []string
}

func (d *debugLogger) Debug(format string, v ...interface{}) {
	d.debug = append(d.debug, fmt.Sprintf(format, v...))
}

func testServices() []*domain.Service {
	return []*domain.Service{
		{ID: "svc-1", BarbershopID: "shop-1", Name: "Barba", Price: 40, DurationMinutes: 30, IsActive: true},
		{ID: "svc-2", BarbershopID: "shop-1", Name: "Luzes", Price: 60, DurationMinutes: 45, IsActive: true},
	}
}

func testBarbers() []*domain.Barber {
	return []*domain.Barber{
		{ID: "barber-1", BarbershopID: "shop-1", Name: "Rafael", IsActive: true},
		{ID: "barber-2", BarbershopID: "shop-1", Name: "Bruno", IsActive: true},
	}
}
