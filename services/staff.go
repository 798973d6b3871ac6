// services/staff.go
package services

import (
	"time"

	"cindrella-backend/models"
	"cindrella-backend/storage"
)

// NewStaffMember is the add-staff payload. Contact is optional and status
// defaults to Active.
type NewStaffMember struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=Therapist Reception Manager Cleaner"`
	Contact string `json:"contact"`
	Status  string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// Directory owns the staff list.
type Directory struct {
	store storage.Store
	now   func() time.Time
}

func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store, now: time.Now}
}

// Reconcile merges the default staff entries into an existing list, keyed
// by name. An empty list becomes exactly the defaults; otherwise each
// default whose name is absent is appended. Running it again on its own
// output changes nothing.
func Reconcile(existing, defaults []models.StaffMember) []models.StaffMember {
	if len(existing) == 0 {
		return append([]models.StaffMember{}, defaults...)
	}
	names := make(map[string]bool, len(existing))
	for _, s := range existing {
		names[s.Name] = true
	}
	merged := append([]models.StaffMember{}, existing...)
	for _, d := range defaults {
		if !names[d.Name] {
			merged = append(merged, d)
		}
	}
	return merged
}

// EnsureDefaults reconciles the persisted list against the defaults and
// writes it back only when the merge added something. Called once at
// startup.
func (d *Directory) EnsureDefaults() ([]models.StaffMember, error) {
	existing := d.List()
	merged := Reconcile(existing, models.DefaultStaff())
	if len(merged) == len(existing) {
		return existing, nil
	}
	if err := storage.Save(d.store, storage.KeyStaff, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// List returns the staff list, newest first.
func (d *Directory) List() []models.StaffMember {
	staff := []models.StaffMember{}
	storage.Load(d.store, storage.KeyStaff, &staff)
	return staff
}

// Add prepends a new member with a timestamp id. Duplicate names are
// permitted.
func (d *Directory) Add(in NewStaffMember) (models.StaffMember, error) {
	status := in.Status
	if status == "" {
		status = models.StaffActive
	}
	member := models.StaffMember{
		ID:      d.now().UnixMilli(),
		Name:    in.Name,
		Role:    in.Role,
		Contact: in.Contact,
		Status:  status,
	}
	updated := append([]models.StaffMember{member}, d.List()...)
	if err := storage.Save(d.store, storage.KeyStaff, updated); err != nil {
		return models.StaffMember{}, err
	}
	return member, nil
}
