// services/billing.go
package services

import (
	"time"

	"cindrella-backend/models"
	"cindrella-backend/storage"
	"cindrella-backend/utils"
)

// BillForm carries the field defaults handed out when the billing form
// opens: today's date and the current wall-clock time.
type BillForm struct {
	Client    string  `json:"client"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	ServiceID int     `json:"serviceId"`
	Staff     string  `json:"staff"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	From      string  `json:"from"`
	To        string  `json:"to"`
}

// Derivation is what changes on the form when a service is selected or the
// start time is edited.
type Derivation struct {
	ServiceName string  `json:"serviceName"`
	Amount      float64 `json:"amount"`
	To          string  `json:"to"`
}

// NewBill is the submit payload.
type NewBill struct {
	Client    string  `json:"client" binding:"required"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	ServiceID int     `json:"serviceId" binding:"required"`
	Staff     string  `json:"staff"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	From      string  `json:"from"`
	To        string  `json:"to"`
}

// Billing owns the append-only bill log.
type Billing struct {
	store storage.Store
	now   func() time.Time
}

func NewBilling(store storage.Store) *Billing {
	return &Billing{store: store, now: time.Now}
}

// OpenForm resets every field and pre-fills date and start time.
func (b *Billing) OpenForm() BillForm {
	now := b.now()
	return BillForm{
		Date: utils.TodayISO(now),
		From: utils.CurrentTimeHHMM(now),
	}
}

// Derive applies the service selection rule: name and amount come from the
// catalog; the end time is recomputed from the start time and the service
// duration only when a start time is set, otherwise the current end time is
// kept. An unknown service id clears name and amount, like an empty
// selection.
func Derive(serviceID int, from, currentTo string) Derivation {
	svc, ok := models.FindService(serviceID)
	if !ok {
		return Derivation{To: currentTo}
	}
	d := Derivation{ServiceName: svc.Name, Amount: svc.Price, To: currentTo}
	if from != "" {
		d.To = utils.AddMinutes(from, utils.DurationMinutes(svc.Duration))
	}
	return d
}

// List returns the bill log, newest first.
func (b *Billing) List() []models.Bill {
	bills := []models.Bill{}
	storage.Load(b.store, storage.KeyBills, &bills)
	return bills
}

// Create appends a bill to the log. The id is the creation timestamp in
// milliseconds, the service name is frozen from the catalog, and the end
// time is derived when the caller left it blank. The stored list is
// prepended so reloads come back newest first.
func (b *Billing) Create(in NewBill) (models.Bill, error) {
	now := b.now()

	svc, found := models.FindService(in.ServiceID)

	bill := models.Bill{
		ID:        now.UnixMilli(),
		Client:    in.Client,
		Phone:     in.Phone,
		Address:   in.Address,
		ServiceID: in.ServiceID,
		Staff:     in.Staff,
		Amount:    in.Amount,
		Total:     in.Amount,
		Date:      in.Date,
		From:      in.From,
		To:        in.To,
	}
	if bill.Date == "" {
		bill.Date = utils.TodayISO(now)
	}
	if found {
		bill.ServiceName = svc.Name
		if bill.To == "" && bill.From != "" {
			bill.To = utils.AddMinutes(bill.From, utils.DurationMinutes(svc.Duration))
		}
	}

	bills := b.List()
	updated := append([]models.Bill{bill}, bills...)
	if err := storage.Save(b.store, storage.KeyBills, updated); err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

// Find returns the bill with the given id.
func (b *Billing) Find(id int64) (models.Bill, bool) {
	for _, bill := range b.List() {
		if bill.ID == id {
			return bill, true
		}
	}
	return models.Bill{}, false
}
