package commands

import (
	"context"

	"studio-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingRepository is the persistence port consumed by the orchestrator and
// the schema guard. Implementations report failures through
// infra.RepositoryError kinds; a missing booking surfaces as KindNotFound.
type BookingRepository interface {
	// FindWithRelations loads a booking together with its client, payments,
	// and galleries.
	FindWithRelations(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	// ExecSchema runs a single idempotent schema statement on behalf of the
	// schema guard.
	ExecSchema(ctx context.Context, stmt string) error
}

// NotificationPort dispatches best-effort notifications after a status
// transition has been persisted. Either call may fail independently of the
// persisted change.
type NotificationPort interface {
	SendBookingConfirmed(ctx context.Context, email string, details ConfirmationDetails) error
	SendAdminNotification(ctx context.Context, kind string, payload AdminStatusChange) error
}

// KindBookingStatusChanged identifies the admin notification sent when an
// operator moves a booking to a new explicit status.
const KindBookingStatusChanged = "booking_status_changed"

type ConfirmationDetails struct {
	ClientName    string
	EventType     string
	EventDate     string
	EventLocation string
	PackageName   string
}

type AdminStatusChange struct {
	BookingID      uuid.UUID
	ClientName     string
	ClientEmail    string
	EventType      string
	EventDate      string
	PreviousStatus booking.Status
	NewStatus      booking.Status
}
