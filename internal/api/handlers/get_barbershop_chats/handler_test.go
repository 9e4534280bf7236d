package get_barbershop_chats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/service/chats"
	"github.com/brunocamarg0/trim-squire/internal/service/chats/models"
)

type fakeService struct {
	got string
	err error
}

func (f *fakeService) ListBarbershopChats(_ context.Context, barbershopID string) (*models.ChatListResponse, error) {
	f.got = barbershopID
	if f.err != nil {
		return nil, f.err
	}
	return &models.ChatListResponse{Chats: []models.ChatResponse{
		{ID: "chat-2", BarbershopID: barbershopID, ClientID: "client-2", UnreadCount: 3, Status: "active"},
		{ID: "chat-1", BarbershopID: barbershopID, ClientID: "client-1", Status: "active"},
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, barbershopID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbershops/"+barbershopID+"/chats", nil)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": barbershopID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ListsChats(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "shop-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shop-1", svc.got)

	var list []models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "chat-2", list[0].ID)
	assert.Equal(t, 3, list[0].UnreadCount)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{}, nopLogger{}), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: chats.ErrInvalidInput}, nopLogger{}), "shop-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), "shop-1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
