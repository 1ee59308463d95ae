//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/builder"
	commandsmock "studio-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQueries(t *testing.T) (queries.BookingQueries, *commandsmock.MockBookingRepository, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockBookingRepository(ctrl)
	clk := clock.NewMockClock(time.Date(2030, 3, 15, 12, 0, 0, 0, time.UTC))
	return queries.NewBookingQueries(repo, clk), repo, clk
}

func TestGetByIDResolvesStageFresh(t *testing.T) {
	q, repo, _ := newQueries(t)

	b := builder.NewBookingBuilder().
		WithPayment("500", booking.PaymentSucceeded).
		Build()
	repo.EXPECT().FindWithRelations(gomock.Any(), b.ID).Return(b, nil)

	view, err := q.GetByID(context.Background(), b.ID)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Same(t, b, view.Booking)
	assert.Equal(t, booking.StageUpcoming, view.Stage)
}

func TestGetByIDStageFollowsClock(t *testing.T) {
	q, repo, clk := newQueries(t)

	// Fully paid, gallery unpublished: the stage flips from upcoming to
	// pending_delivery once the clock moves past the event date.
	b := builder.NewBookingBuilder().
		WithEventDate("2030-06-14").
		WithPayment("5000", booking.PaymentSucceeded).
		Build()
	repo.EXPECT().FindWithRelations(gomock.Any(), b.ID).Return(b, nil).Times(2)

	view, err := q.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StageUpcoming, view.Stage)

	clk.Set(time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC))

	view, err = q.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StagePendingDelivery, view.Stage)
}

func TestGetByIDNotFound(t *testing.T) {
	q, repo, _ := newQueries(t)

	b := builder.NewBookingBuilder().Build()
	repo.EXPECT().FindWithRelations(gomock.Any(), b.ID).
		Return(nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil))

	view, err := q.GetByID(context.Background(), b.ID)

	require.Nil(t, view)
	require.ErrorIs(t, err, errs.ErrBookingNotFound)
}
