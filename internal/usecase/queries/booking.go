package queries

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingView is a booking aggregate paired with its lifecycle stage, which
// is resolved fresh on every read and never persisted.
type BookingView struct {
	Booking *booking.Booking
	Stage   booking.LifecycleStage
}

// BookingReader is the read side of the persistence port; the repository
// implementation used for commands satisfies it as-is.
type BookingReader interface {
	FindWithRelations(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	reader BookingReader
	clock  clock.Clock
}

func NewBookingQueries(reader BookingReader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		reader: reader,
		clock:  clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.reader.FindWithRelations(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &BookingView{
		Booking: b,
		Stage:   booking.DeriveStage(b, q.clock.Now()),
	}, nil
}
