package schema

import (
	"context"
	"fmt"
	"log/slog"

	"studio-booking/internal/pkg/errs"
)

// Executor runs one idempotent schema statement; the booking repository
// satisfies it.
type Executor interface {
	ExecSchema(ctx context.Context, stmt string) error
}

type column struct {
	name    string
	ddlType string
	def     string // SQL literal; empty means no default and no backfill
	notNull bool
}

// Optional bookings columns this subsystem reads. Each entry is ensured
// additively at boot: add-if-absent, backfill, set default, tighten not-null.
var bookingColumns = []column{
	{name: "event_time", ddlType: "TIME", def: "'09:00:00'", notNull: true},
	{name: "event_timezone", ddlType: "TEXT", def: "'America/New_York'", notNull: true},
	{name: "deposit_amount", ddlType: "NUMERIC(10,2)", def: "0", notNull: true},
	{name: "contract_signed_at", ddlType: "TIMESTAMPTZ"},
}

type Guard struct {
	exec   Executor
	logger *slog.Logger
}

func NewGuard(exec Executor, logger *slog.Logger) *Guard {
	return &Guard{
		exec:   exec,
		logger: logger,
	}
}

// Ensure is safe to re-run on every boot: every statement tolerates a prior
// partial run. A failing column is logged as critical and skipped so the
// process still boots; reads and writes that do not touch the missing column
// keep working, the rest fail downstream with ordinary persistence errors.
func (g *Guard) Ensure(ctx context.Context) {
	for _, col := range bookingColumns {
		if err := g.ensureColumn(ctx, col); err != nil {
			g.logger.Error("schema guard failed, continuing without column",
				"table", "bookings",
				"column", col.name,
				"error", err,
			)
		}
	}
}

func (g *Guard) ensureColumn(ctx context.Context, col column) error {
	stmts := []string{
		fmt.Sprintf("ALTER TABLE bookings ADD COLUMN IF NOT EXISTS %s %s", col.name, col.ddlType),
	}
	if col.def != "" {
		stmts = append(stmts,
			fmt.Sprintf("UPDATE bookings SET %s = %s WHERE %s IS NULL", col.name, col.def, col.name),
			fmt.Sprintf("ALTER TABLE bookings ALTER COLUMN %s SET DEFAULT %s", col.name, col.def),
		)
	}
	if col.notNull {
		stmts = append(stmts,
			fmt.Sprintf("ALTER TABLE bookings ALTER COLUMN %s SET NOT NULL", col.name),
		)
	}

	for _, stmt := range stmts {
		if err := g.exec.ExecSchema(ctx, stmt); err != nil {
			return errs.Wrap(err, "schema statement failed")
		}
	}
	return nil
}
