package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cindrella-backend/config"
	"cindrella-backend/models"
	"cindrella-backend/routes"
	"cindrella-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("INVOICE_DIR", t.TempDir())
	config.Store = storage.NewMemoryStore()
	return routes.SetupRouter()
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBill(t *testing.T) {
	t.Run("created_and_persisted", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/api/bills", gin.H{
			"client":    "Asha",
			"serviceId": 1,
			"amount":    1500,
			"from":      "10:00",
			"date":      "2025-09-05",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var bill models.Bill
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bill))
		assert.NotZero(t, bill.ID)
		assert.Equal(t, "Swedish Massage", bill.ServiceName)
		assert.Equal(t, "11:00", bill.To)
		assert.Equal(t, 1500.0, bill.Total)

		list := doJSON(r, http.MethodGet, "/api/bills", nil)
		require.Equal(t, http.StatusOK, list.Code)
		var rows []models.Bill
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, bill.ID, rows[0].ID)
	})

	t.Run("missing_client_rejected", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/api/bills", gin.H{"serviceId": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list_resolves_live_service_name", func(t *testing.T) {
		r := setupRouter(t)

		w := doJSON(r, http.MethodPost, "/api/bills", gin.H{
			"client":    "Asha",
			"serviceId": 5,
			"amount":    500,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		list := doJSON(r, http.MethodGet, "/api/bills", nil)
		var rows []struct {
			ServiceName string `json:"serviceName"`
			Service     string `json:"service"`
		}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Head Massage", rows[0].ServiceName)
		assert.Equal(t, "Head Massage", rows[0].Service)
	})
}

func TestDeriveBill(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bills/derive", gin.H{
		"serviceId": 1,
		"from":      "10:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var d struct {
		ServiceName string  `json:"serviceName"`
		Amount      float64 `json:"amount"`
		To          string  `json:"to"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "Swedish Massage", d.ServiceName)
	assert.Equal(t, 1500.0, d.Amount)
	assert.Equal(t, "11:00", d.To)
}

func TestNewBillForm(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/bills/new", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var form struct {
		Date string `json:"date"`
		From string `json:"from"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, form.Date)
	assert.Regexp(t, `^\d{2}:\d{2}$`, form.From)
}

func TestGetInvoice(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bills", gin.H{
		"client":    "Asha",
		"serviceId": 1,
		"amount":    1500,
		"from":      "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var bill models.Bill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bill))

	t.Run("open", func(t *testing.T) {
		resp := doJSON(r, http.MethodGet, fmt.Sprintf("/api/bills/%d/invoice", bill.ID), nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(resp.Body.String(), "%PDF"))
	})

	t.Run("print_does_not_mutate_log", func(t *testing.T) {
		before, err := config.Store.Get(storage.KeyBills)
		require.NoError(t, err)

		resp := doJSON(r, http.MethodGet, fmt.Sprintf("/api/bills/%d/invoice?action=print", bill.ID), nil)
		require.Equal(t, http.StatusOK, resp.Code)

		after, err := config.Store.Get(storage.KeyBills)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown_bill", func(t *testing.T) {
		resp := doJSON(r, http.MethodGet, "/api/bills/42/invoice", nil)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
