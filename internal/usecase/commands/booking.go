package commands

import (
	"context"
	"log/slog"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

// UpdateBookingPatch carries the operator's partial update. Nil fields leave
// the stored value untouched, except event time and timezone which are always
// re-normalized (see Update).
type UpdateBookingPatch struct {
	Status           *booking.Status
	EventType        *string
	EventDate        *string
	EventTime        *string
	EventTimezone    *string
	Location         *string
	PackageName      *string
	PackagePrice     *string
	DepositAmount    *string
	Notes            *string
	ContractSignedAt *time.Time
}

type UpdateBookingResult struct {
	Booking *booking.Booking
	Stage   booking.LifecycleStage
}

type BookingCommands interface {
	Update(ctx context.Context, id uuid.UUID, p UpdateBookingPatch) (*UpdateBookingResult, error)
}

type bookingUseCaseImpl struct {
	repo     BookingRepository
	notifier NotificationPort
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingUseCase(
	repo BookingRepository,
	notifier NotificationPort,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Update applies an operator patch to a booking, persists it, and — when the
// patch moved the explicit status to a new value — dispatches best-effort
// notifications after the write. Notification failures are logged and never
// surfaced; errs.ErrBookingNotFound is the only caller-visible failure for a
// missing booking.
//
// There is no version token: two concurrent updates to the same booking race
// at the storage layer with last-write-wins semantics. Callers that care
// about ordering must serialize their own edits.
func (uc *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, p UpdateBookingPatch) (*UpdateBookingResult, error) {
	current, err := uc.repo.FindWithRelations(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	previousStatus := current.Status
	applyPatch(current, p)

	if _, err := uc.repo.Save(ctx, current); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if p.Status != nil && *p.Status != previousStatus {
		uc.dispatchTransitionNotifications(ctx, current, previousStatus, *p.Status)
	}

	// Reload so the returned aggregate reflects any relation changes that
	// landed meanwhile; the stage is always resolved post-persist.
	updated, err := uc.repo.FindWithRelations(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &UpdateBookingResult{
		Booking: updated,
		Stage:   booking.DeriveStage(updated, uc.clock.Now()),
	}, nil
}

func applyPatch(b *booking.Booking, p UpdateBookingPatch) {
	b.Status = patch.Coalesce(p.Status, b.Status)
	b.EventType = patch.Coalesce(p.EventType, b.EventType)
	b.EventDate = patch.Coalesce(p.EventDate, b.EventDate)
	b.Location = patch.Coalesce(p.Location, b.Location)
	b.PackageName = patch.Coalesce(p.PackageName, b.PackageName)
	b.PackagePrice = patch.Coalesce(p.PackagePrice, b.PackagePrice)
	b.DepositAmount = patch.Coalesce(p.DepositAmount, b.DepositAmount)
	b.Notes = patch.Coalesce(p.Notes, b.Notes)

	// Event time and timezone are re-normalized on every update; an absent or
	// malformed value deliberately resets to the studio default rather than
	// keeping whatever a legacy row carried.
	b.EventTime = booking.NormalizeEventTime(patch.Coalesce(p.EventTime, ""))
	b.EventTimezone = booking.NormalizeEventTimezone(patch.Coalesce(p.EventTimezone, ""))

	if p.ContractSignedAt != nil {
		t := *p.ContractSignedAt
		b.ContractSignedAt = &t
	}
}

// dispatchTransitionNotifications fires after the status change is persisted.
// Each attempt is recovered independently so a failing confirmation never
// blocks the admin notification, and neither failure reaches the caller.
func (uc *bookingUseCaseImpl) dispatchTransitionNotifications(
	ctx context.Context,
	b *booking.Booking,
	previous, next booking.Status,
) {
	email := b.ClientEmail()

	if isConfirmationTransition(next) && email != "" {
		details := ConfirmationDetails{
			ClientName:    b.ClientName(),
			EventType:     b.EventType,
			EventDate:     b.EventDate,
			EventLocation: b.Location,
			PackageName:   b.PackageName,
		}
		if err := uc.notifier.SendBookingConfirmed(ctx, email, details); err != nil {
			uc.logger.Error("failed to send booking confirmation",
				"booking_id", b.ID,
				"client_email", email,
				"previous_status", previous.String(),
				"new_status", next.String(),
				"error", err,
			)
		}
	}

	payload := AdminStatusChange{
		BookingID:      b.ID,
		ClientName:     b.ClientName(),
		ClientEmail:    email,
		EventType:      b.EventType,
		EventDate:      b.EventDate,
		PreviousStatus: previous,
		NewStatus:      next,
	}
	if err := uc.notifier.SendAdminNotification(ctx, KindBookingStatusChanged, payload); err != nil {
		uc.logger.Error("failed to send admin status notification",
			"booking_id", b.ID,
			"previous_status", previous.String(),
			"new_status", next.String(),
			"error", err,
		)
	}
}

// isConfirmationTransition reports whether the new status denotes the
// confirmed/upcoming transition that triggers the client confirmation.
func isConfirmationTransition(next booking.Status) bool {
	return next == booking.StatusUpcoming || next == booking.StatusConfirmed
}

func mapRepoError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrBookingNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
