package domain

import (
	"fmt"
	"time"
)

const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
)

// Kind is the closed set of reservation kinds. Each kind draws from its own
// per-user quota counter.
type Kind string

const (
	KindStandard     Kind = "Standard"
	KindSubstitution Kind = "Substitution"
	KindContingency  Kind = "Contingency"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindStandard, KindSubstitution, KindContingency:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown reservation kind: %q", s)
}

// Status is the closed set of reservation statuses. Cancelled and Legacy are
// terminal: a reservation never leaves them.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusUnconfirmed Status = "Unconfirmed"
	StatusConfirmed   Status = "Confirmed"
	StatusCancelled   Status = "Cancelled"
	StatusLegacy      Status = "Legacy"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusUnconfirmed, StatusConfirmed, StatusCancelled, StatusLegacy:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown reservation status: %q", s)
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusLegacy
}

type User struct {
	ID                string    `db:"id"`
	Email             string    `db:"email"`
	Name              string    `db:"name"`
	Role              string    `db:"role"`
	BoatID            string    `db:"boat_id"`
	PasswordHash      string    `db:"password_hash"`
	StandardQuota     int       `db:"standard_quota"`
	SubstitutionQuota int       `db:"substitution_quota"`
	ContingencyQuota  int       `db:"contingency_quota"`
	CreatedAt         time.Time `db:"created_at"`
}

// Quota returns the remaining counter for the given kind.
func (u *User) Quota(k Kind) int {
	switch k {
	case KindSubstitution:
		return u.SubstitutionQuota
	case KindContingency:
		return u.ContingencyQuota
	default:
		return u.StandardQuota
	}
}

func (u *User) AddQuota(k Kind, delta int) {
	switch k {
	case KindSubstitution:
		u.SubstitutionQuota += delta
	case KindContingency:
		u.ContingencyQuota += delta
	default:
		u.StandardQuota += delta
	}
}

type Boat struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Capacity      int       `db:"capacity"`
	AssignedUsers int       `db:"assigned_users"`
	CreatedAt     time.Time `db:"created_at"`
}

type Reservation struct {
	ID     string    `db:"id"`
	UserID string    `db:"user_id"`
	BoatID string    `db:"boat_id"`
	Date   time.Time `db:"date"`
	Kind   Kind      `db:"kind"`
	Status Status    `db:"status"`
	Notes  string    `db:"notes"`
	// QuotaRestored guards the one quota restore a reservation gets across
	// its whole lifecycle, whichever of delete, cancel or archival happens.
	QuotaRestored bool      `db:"quota_restored"`
	CreatedAt     time.Time `db:"created_at"`
}
