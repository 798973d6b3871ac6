// services/receipt.go
package services

import (
	"fmt"
	"log"
	"os"

	"cindrella-backend/models"
	"cindrella-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReceiptNotifier texts a short receipt to the client after a bill is
// created. It stays disabled unless the Twilio environment is configured,
// and send failures are only logged.
type ReceiptNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewReceiptNotifier() *ReceiptNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return &ReceiptNotifier{}
	}

	return &ReceiptNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

// Enabled reports whether the Twilio environment is configured.
func (n *ReceiptNotifier) Enabled() bool {
	return n.client != nil
}

// SendReceipt sends the receipt SMS for a bill. Bills without a usable
// phone number are skipped.
func (n *ReceiptNotifier) SendReceipt(bill models.Bill) {
	if !n.Enabled() {
		return
	}
	if !utils.ValidatePhone(bill.Phone) {
		log.Printf("Receipt for bill %d skipped: no valid phone", bill.ID)
		return
	}

	service := bill.ServiceName
	if service == "" {
		service = "your visit"
	}
	body := fmt.Sprintf("Thank you %s for visiting %s! %s - Rs. %.0f. See you again soon.",
		bill.Client, businessName, service, bill.Total)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(bill.Phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send receipt for bill %d: %v", bill.ID, err)
		return
	}
	log.Printf("Receipt sent for bill %d", bill.ID)
}
