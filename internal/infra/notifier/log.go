package notifier

import (
	"context"
	"log/slog"

	"studio-booking/internal/usecase/commands"
)

// LogNotifier writes notifications to the process log. Mail transport lives
// outside this subsystem; deployments wire a real sender behind
// commands.NotificationPort in its place.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendBookingConfirmed(_ context.Context, email string, details commands.ConfirmationDetails) error {
	n.logger.Info("booking confirmation",
		"to", email,
		"client_name", details.ClientName,
		"event_type", details.EventType,
		"event_date", details.EventDate,
		"event_location", details.EventLocation,
		"package_name", details.PackageName,
	)
	return nil
}

func (n *LogNotifier) SendAdminNotification(_ context.Context, kind string, payload commands.AdminStatusChange) error {
	n.logger.Info("admin notification",
		"kind", kind,
		"booking_id", payload.BookingID,
		"client_name", payload.ClientName,
		"client_email", payload.ClientEmail,
		"event_type", payload.EventType,
		"event_date", payload.EventDate,
		"previous_status", payload.PreviousStatus.String(),
		"new_status", payload.NewStatus.String(),
	)
	return nil
}
