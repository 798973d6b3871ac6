// controllers/billing.go
package controllers

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"cindrella-backend/config"
	"cindrella-backend/models"
	"cindrella-backend/services"
	"cindrella-backend/utils"

	"github.com/gin-gonic/gin"
)

// Notifier is set at startup; nil means receipts are disabled.
var Notifier *services.ReceiptNotifier

// BillRow is one row of the billing table. Service is resolved from the
// live catalog at read time, while ServiceName inside the bill stays the
// frozen copy the invoice was issued with. The two can disagree once the
// catalog changes; both readings are exposed on purpose.
type BillRow struct {
	models.Bill
	Service string `json:"service"`
}

func invoiceRenderer() *services.InvoiceRenderer {
	dir := os.Getenv("INVOICE_DIR")
	if dir == "" {
		dir = "./invoices"
	}
	return services.NewInvoiceRenderer(dir)
}

// NewBillForm returns the reset form: today's date and the current time.
func NewBillForm(c *gin.Context) {
	billing := services.NewBilling(config.Store)
	c.JSON(http.StatusOK, billing.OpenForm())
}

// DeriveBillInput is the payload for recomputing the dependent form fields.
type DeriveBillInput struct {
	ServiceID int    `json:"serviceId" binding:"required"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// DeriveBill applies the service-selection rule and returns the derived
// name, amount and end time.
func DeriveBill(c *gin.Context) {
	var input DeriveBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, services.Derive(input.ServiceID, input.From, input.To))
}

// CreateBill appends a bill to the log and kicks off the invoice render.
func CreateBill(c *gin.Context) {
	var input services.NewBill
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	billing := services.NewBilling(config.Store)
	bill, err := billing.Create(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save bill")
		return
	}

	// The render runs detached, like the original's open-after-submit: the
	// response does not wait for it and an in-flight render cannot be
	// canceled. Failures only reach the log.
	renderer := invoiceRenderer()
	go func(b models.Bill) {
		if _, err := renderer.RenderToFile(b, services.ActionOpen); err != nil {
			log.Printf("Invoice render for bill %d failed: %v", b.ID, err)
		}
	}(bill)

	if Notifier != nil && Notifier.Enabled() {
		go Notifier.SendReceipt(bill)
	}

	c.JSON(http.StatusCreated, bill)
}

// GetBills lists the bill log, newest first.
func GetBills(c *gin.Context) {
	billing := services.NewBilling(config.Store)
	bills := billing.List()

	rows := make([]BillRow, 0, len(bills))
	for _, b := range bills {
		row := BillRow{Bill: b}
		if svc, ok := models.FindService(b.ServiceID); ok {
			row.Service = svc.Name
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, rows)
}

// GetInvoice renders the invoice PDF for a bill. action=print embeds the
// viewer print request; the default opens for viewing.
func GetInvoice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid bill ID format")
		return
	}

	billing := services.NewBilling(config.Store)
	bill, found := billing.Find(id)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Bill not found")
		return
	}

	action := services.ActionOpen
	if c.Query("action") == string(services.ActionPrint) {
		action = services.ActionPrint
	}

	data, err := invoiceRenderer().Render(bill, action)
	if err != nil {
		log.Printf("Invoice render for bill %d failed: %v", bill.ID, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", "inline; filename=invoice-"+strconv.FormatInt(bill.ID, 10)+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}
