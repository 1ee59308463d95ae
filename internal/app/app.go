// Package app is the explicit composition root for the booking lifecycle
// engine. Constructors are called directly instead of going through a DI
// container so the wiring stays greppable.
package app

import (
	"log/slog"

	"studio-booking/internal/infra/notifier"
	"studio-booking/internal/infra/repository"
	"studio-booking/internal/infra/schema"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App bundles the engine's entry points. The booking CRUD handlers embed it
// in-process; this subsystem exposes no wire protocol of its own.
type App struct {
	Commands commands.BookingCommands
	Queries  queries.BookingQueries
	Guard    *schema.Guard
}

func New(pool *pgxpool.Pool, logger *slog.Logger) *App {
	clk := clock.NewRealClock()
	repo := repository.NewBookingRepository(pool)
	notify := notifier.NewLogNotifier(logger)

	return &App{
		Commands: commands.NewBookingUseCase(repo, notify, clk, logger),
		Queries:  queries.NewBookingQueries(repo, clk),
		Guard:    schema.NewGuard(repo, logger),
	}
}
