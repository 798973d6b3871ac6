package models

// Staff roles
const (
	RoleTherapist = "Therapist"
	RoleReception = "Reception"
	RoleManager   = "Manager"
	RoleCleaner   = "Cleaner"
)

// Staff statuses
const (
	StaffActive   = "Active"
	StaffInactive = "Inactive"
)

type StaffMember struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
}

// DefaultStaff returns the seed entries written on first run. The merge is
// keyed by name, so the small fixed ids stay stable across reloads.
func DefaultStaff() []StaffMember {
	return []StaffMember{
		{ID: 1, Name: "Elli", Role: RoleTherapist, Contact: "", Status: StaffActive},
		{ID: 2, Name: "Jasmin", Role: RoleTherapist, Contact: "", Status: StaffActive},
		{ID: 3, Name: "Muskan", Role: RoleTherapist, Contact: "", Status: StaffActive},
		{ID: 4, Name: "Yamini", Role: RoleTherapist, Contact: "", Status: StaffActive},
	}
}
