//go:build unit

package schema_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"studio-booking/internal/infra/schema"
	"studio-booking/internal/pkg/errs"
	commandsmock "studio-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGuard(t *testing.T) (*schema.Guard, *commandsmock.MockBookingRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockBookingRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return schema.NewGuard(repo, logger), repo
}

func TestEnsureRunsEveryStatement(t *testing.T) {
	guard, repo := newGuard(t)

	var stmts []string
	repo.EXPECT().ExecSchema(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stmt string) error {
			stmts = append(stmts, stmt)
			return nil
		}).AnyTimes()

	guard.Ensure(context.Background())

	// Three defaulted not-null columns at four statements each, plus the
	// nullable contract_signed_at at one.
	require.Len(t, stmts, 13)

	assert.Equal(t, "ALTER TABLE bookings ADD COLUMN IF NOT EXISTS event_time TIME", stmts[0])
	assert.Equal(t, "UPDATE bookings SET event_time = '09:00:00' WHERE event_time IS NULL", stmts[1])
	assert.Equal(t, "ALTER TABLE bookings ALTER COLUMN event_time SET DEFAULT '09:00:00'", stmts[2])
	assert.Equal(t, "ALTER TABLE bookings ALTER COLUMN event_time SET NOT NULL", stmts[3])
	assert.Equal(t, "ALTER TABLE bookings ADD COLUMN IF NOT EXISTS contract_signed_at TIMESTAMPTZ", stmts[12])

	for _, stmt := range stmts {
		if strings.Contains(stmt, "contract_signed_at") {
			assert.NotContains(t, stmt, "SET NOT NULL")
			assert.NotContains(t, stmt, "SET DEFAULT")
		}
	}
}

func TestEnsureIsRepeatable(t *testing.T) {
	guard, repo := newGuard(t)

	repo.EXPECT().ExecSchema(gomock.Any(), gomock.Any()).Return(nil).Times(26)

	// Same statements on every run; a second boot must issue the identical
	// forward migration.
	guard.Ensure(context.Background())
	guard.Ensure(context.Background())
}

func TestEnsureContinuesPastFailingColumn(t *testing.T) {
	guard, repo := newGuard(t)

	var stmts []string
	repo.EXPECT().ExecSchema(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stmt string) error {
			stmts = append(stmts, stmt)
			if strings.Contains(stmt, " event_time ") {
				return errs.New("permission denied")
			}
			return nil
		}).AnyTimes()

	guard.Ensure(context.Background())

	// event_time aborts after its first failing statement; every other
	// column still runs in full.
	require.Len(t, stmts, 10)
	assert.Equal(t, "ALTER TABLE bookings ADD COLUMN IF NOT EXISTS event_time TIME", stmts[0])
	assert.Equal(t, "ALTER TABLE bookings ADD COLUMN IF NOT EXISTS event_timezone TEXT", stmts[1])

	for _, stmt := range stmts[1:] {
		assert.NotContains(t, stmt, "event_time ")
	}
}
