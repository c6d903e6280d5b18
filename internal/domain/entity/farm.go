package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Farm is the tenant root. Exactly one user owns it; staff are other members.
type Farm struct {
	ID        uuid.UUID `json:"farm_id"`
	OwnerID   string    `json:"owner_id"`
	FarmName  string    `json:"farm_name"`
	Staff     []string  `json:"staff"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOwner reports whether uid owns the farm.
func (f *Farm) IsOwner(uid string) bool {
	return f.OwnerID == uid
}

// HasMember reports whether uid is the owner or part of the staff.
func (f *Farm) HasMember(uid string) bool {
	return f.IsOwner(uid) || slices.Contains(f.Staff, uid)
}

// AddStaff appends uid to the staff list once.
func (f *Farm) AddStaff(uid string) {
	if !slices.Contains(f.Staff, uid) {
		f.Staff = append(f.Staff, uid)
	}
}

// RemoveStaff drops uid from the staff list and reports whether it was present.
func (f *Farm) RemoveStaff(uid string) bool {
	before := len(f.Staff)
	f.Staff = slices.DeleteFunc(f.Staff, func(s string) bool { return s == uid })

	return len(f.Staff) != before
}
