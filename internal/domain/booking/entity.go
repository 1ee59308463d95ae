package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is the aggregate this subsystem reconciles. Monetary fields are
// decimal text exactly as scanned from storage; legacy rows may hold blank or
// junk values there, and the resolver is expected to tolerate them.
type Booking struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	Client           *Client
	EventType        string
	EventDate        string // calendar date as stored, possibly blank
	EventTime        string // local time-of-day, HH:MM:SS
	EventTimezone    string // IANA zone name
	Location         string
	PackageName      string
	PackagePrice     string // decimal text
	DepositAmount    string // decimal text
	Status           Status
	Notes            string
	ContractSignedAt *time.Time
	Payments         []Payment
	Galleries        []Gallery
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ClientEmail returns the related client's email, or "" when the relation is
// not loaded or the client has no address on file.
func (b *Booking) ClientEmail() string {
	if b.Client == nil {
		return ""
	}
	return strings.TrimSpace(b.Client.Email)
}

// ClientName returns the related client's display name, or "" when the
// relation is not loaded.
func (b *Booking) ClientName() string {
	if b.Client == nil {
		return ""
	}
	return b.Client.FullName()
}

type Client struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (c Client) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Payment is read-only from this subsystem's perspective: amounts are summed
// for stage derivation, never mutated.
type Payment struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Amount    string // decimal text
	Status    PaymentStatus
}

// Gallery is read-only here; only its published state matters for delivery.
type Gallery struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Title     string
	Status    GalleryStatus
}
