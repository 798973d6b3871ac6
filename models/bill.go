package models

// Bill is one entry in the append-only billing log. ServiceName and Staff
// are frozen copies taken at creation time so later catalog or directory
// edits never change what an already issued invoice says.
type Bill struct {
	ID          int64   `json:"id"` // creation timestamp in milliseconds
	Client      string  `json:"client"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	ServiceID   int     `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Staff       string  `json:"staff"`
	Amount      float64 `json:"amount"`
	Total       float64 `json:"total"`
	Date        string  `json:"date"` // YYYY-MM-DD
	From        string  `json:"from"` // HH:MM
	To          string  `json:"to"`   // HH:MM
}
