package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cindrella-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill() models.Bill {
	return models.Bill{
		ID:          1700000000000,
		Client:      "Asha Verma",
		Phone:       "9876543210",
		Address:     "12 MG Road",
		ServiceID:   1,
		ServiceName: "Swedish Massage",
		Staff:       "Elli",
		Amount:      1500,
		Total:       1500,
		Date:        "2025-09-05",
		From:        "10:00",
		To:          "11:00",
	}
}

func TestRender(t *testing.T) {
	renderer := NewInvoiceRenderer(t.TempDir())

	t.Run("open_produces_pdf", func(t *testing.T) {
		data, err := renderer.Render(sampleBill(), ActionOpen)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.NotContains(t, string(data), "/JavaScript")
	})

	t.Run("print_embeds_print_request", func(t *testing.T) {
		data, err := renderer.Render(sampleBill(), ActionPrint)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.Contains(t, string(data), "/JavaScript")
	})

	t.Run("missing_service_name_falls_back_to_id", func(t *testing.T) {
		bill := sampleBill()
		bill.ServiceName = ""

		data, err := renderer.Render(bill, ActionOpen)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	renderer := NewInvoiceRenderer(filepath.Join(dir, "invoices"))

	path, err := renderer.RenderToFile(sampleBill(), ActionOpen)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "invoices", "invoice-1700000000000.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
