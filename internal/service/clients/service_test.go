package clients

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/domain"
	clientRepo "github.com/brunocamarg0/trim-squire/internal/infra/storage/client"
	"github.com/brunocamarg0/trim-squire/internal/service/clients/models"
	"github.com/brunocamarg0/trim-squire/pkg/ptr"
)

type fakeClientRepo struct {
	clients map[string]*domain.Client
	err     error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*domain.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c.ID = "client-new"
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, shopID, id string) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.clients[id]
	if !ok || c.BarbershopID != shopID {
		return nil, clientRepo.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) List(_ context.Context, shopID string) ([]*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Client
	for _, c := range f.clients {
		if c.BarbershopID == shopID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *domain.Client) error {
	f.clients[c.ID] = c
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeClientRepo) (*Service, *fakeTxManager) {
	tx := &fakeTxManager{}
	s := NewService(repo, tx, nopLogger{})
	s.timeProvider = fixedTime{t: time.Date(2024, 12, 20, 13, 0, 0, 0, time.UTC)}
	return s, tx
}

func TestService_CreateClient(t *testing.T) {
	repo := newFakeClientRepo()
	s, _ := newTestService(repo)
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	resp, err := s.CreateClient(context.Background(), &models.CreateClientRequest{
		BarbershopID: "shop-1",
		Name:         "João",
		Phone:        "+55 11 98888-0000",
		DateOfBirth:  &birth,
	})

	require.NoError(t, err)
	assert.Equal(t, "client-new", resp.ID)
	assert.Equal(t, "1990-05-17", ptr.Value(resp.DateOfBirth))
	assert.Equal(t, []string{}, resp.PreferredServiceIDs)
	assert.Equal(t, 0, resp.TotalVisits)
}

func TestService_CreateClient_Validation(t *testing.T) {
	s, _ := newTestService(newFakeClientRepo())
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  models.CreateClientRequest
	}{
		{"missing barbershop", models.CreateClientRequest{Name: "João", Phone: "1"}},
		{"missing name", models.CreateClientRequest{BarbershopID: "shop-1", Phone: "1"}},
		{"missing phone", models.CreateClientRequest{BarbershopID: "shop-1", Name: "João"}},
		{"bad email", models.CreateClientRequest{BarbershopID: "shop-1", Name: "João", Phone: "1", Email: ptr.Ptr("joao@")}},
		{"born in future", models.CreateClientRequest{BarbershopID: "shop-1", Name: "João", Phone: "1", DateOfBirth: &future}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateClient(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_CreateClient_RepositoryError(t *testing.T) {
	repo := newFakeClientRepo()
	repo.err = errors.New("db down")
	s, _ := newTestService(repo)

	_, err := s.CreateClient(context.Background(), &models.CreateClientRequest{BarbershopID: "shop-1", Name: "João", Phone: "1"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateClient(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["client-1"] = &domain.Client{
		ID: "client-1", BarbershopID: "shop-1", Name: "João", Phone: "1",
		Email: ptr.Ptr("joao@example.com"), TotalVisits: 4, TotalSpent: 180,
	}
	s, tx := newTestService(repo)

	resp, err := s.UpdateClient(context.Background(), "shop-1", "client-1", &models.UpdateClientRequest{
		Email:               ptr.Ptr(""),
		PreferredBarberID:   ptr.Ptr("barber-1"),
		PreferredServiceIDs: &[]string{"svc-1", "svc-2"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Nil(t, resp.Email)
	assert.Equal(t, "barber-1", ptr.Value(resp.PreferredBarberID))
	assert.Equal(t, []string{"svc-1", "svc-2"}, resp.PreferredServiceIDs)
	assert.Equal(t, 4, resp.TotalVisits)
	assert.Equal(t, "João", repo.clients["client-1"].Name)
}

func TestService_UpdateClient_Errors(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["client-1"] = &domain.Client{ID: "client-1", BarbershopID: "shop-1", Name: "João", Phone: "1"}
	s, _ := newTestService(repo)

	_, err := s.UpdateClient(context.Background(), "shop-1", "client-1", &models.UpdateClientRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpdateClient(context.Background(), "shop-1", "client-1", &models.UpdateClientRequest{Phone: ptr.Ptr(" ")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "1", repo.clients["client-1"].Phone)

	_, err = s.UpdateClient(context.Background(), "shop-2", "client-1", &models.UpdateClientRequest{Name: ptr.Ptr("Jo")})
	assert.ErrorIs(t, err, ErrClientNotFound)

	repo.err = errors.New("db down")
	_, err = s.UpdateClient(context.Background(), "shop-1", "client-1", &models.UpdateClientRequest{Name: ptr.Ptr("Jo")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListClients(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients["client-1"] = &domain.Client{ID: "client-1", BarbershopID: "shop-1", Name: "João", Phone: "1"}
	repo.clients["client-2"] = &domain.Client{ID: "client-2", BarbershopID: "shop-2", Name: "Ana", Phone: "2"}
	s, _ := newTestService(repo)

	resp, err := s.ListClients(context.Background(), "shop-1")

	require.NoError(t, err)
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "client-1", resp.Clients[0].ID)

	_, err = s.ListClients(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
