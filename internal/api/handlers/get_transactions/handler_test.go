package get_transactions

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

	"github.com/brunocamarg0/trim-squire/internal/service/finance"
	"github.com/brunocamarg0/trim-squire/internal/service/finance/models"
)

type fakeService struct {
	got *models.ListTransactionsRequest
	err error
}

func (f *fakeService) ListTransactions(_ context.Context, req *models.ListTransactionsRequest) (*models.TransactionListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.TransactionListResponse{Transactions: []models.TransactionResponse{
		{ID: "tx-1", BarbershopID: req.BarbershopID, Type: "revenue", Amount: 45, Date: "2024-12-21"},
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbershops/shop-1/transactions"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"barbershopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ParsesFilters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "?type=expense&startDate=2024-12-01&endDate=2024-12-31")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shop-1", svc.got.BarbershopID)
	assert.Equal(t, "expense", *svc.got.Type)
	assert.Equal(t, "2024-12-01", svc.got.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", svc.got.EndDate.Format("2006-01-02"))

	var list []models.TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_NoFilters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Type)
	assert.Nil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)
}

func TestHandler_Errors(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), "?endDate=amanha")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)

	rec = serve(NewHandler(&fakeService{err: finance.ErrInvalidInput}, nopLogger{}), "?type=gift")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
