package repository

import (
	"context"
	"errors"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; narrowed so tests
// and transactions can stand in for the pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Monetary and calendar columns are scanned as text on purpose: the resolver
// owns the tolerant parsing, and the adapter must not lose whatever a legacy
// row contains.
const findBookingQuery = `
SELECT b.id,
       b.client_id,
       COALESCE(b.event_type, ''),
       COALESCE(b.event_date::text, ''),
       COALESCE(b.event_time::text, ''),
       COALESCE(b.event_timezone, ''),
       COALESCE(b.location, ''),
       COALESCE(b.package_name, ''),
       COALESCE(b.package_price::text, ''),
       COALESCE(b.deposit_amount::text, ''),
       COALESCE(b.status, ''),
       COALESCE(b.notes, ''),
       b.contract_signed_at,
       b.created_at,
       b.updated_at,
       c.id,
       COALESCE(c.first_name, ''),
       COALESCE(c.last_name, ''),
       COALESCE(c.email, ''),
       COALESCE(c.phone, '')
FROM bookings b
JOIN clients c ON c.id = b.client_id
WHERE b.id = $1`

const listPaymentsQuery = `
SELECT id, booking_id, COALESCE(amount::text, ''), COALESCE(status, '')
FROM payments
WHERE booking_id = $1
ORDER BY created_at`

const listGalleriesQuery = `
SELECT id, booking_id, COALESCE(title, ''), COALESCE(status, '')
FROM galleries
WHERE booking_id = $1
ORDER BY created_at`

const updateBookingQuery = `
UPDATE bookings SET
	status             = $2,
	event_type         = $3,
	event_date         = NULLIF($4, '')::date,
	event_time         = $5::time,
	event_timezone     = $6,
	location           = $7,
	package_name       = $8,
	package_price      = NULLIF($9, '')::numeric,
	deposit_amount     = NULLIF($10, '')::numeric,
	notes              = $11,
	contract_signed_at = $12,
	updated_at         = now()
WHERE id = $1`

func (r *BookingRepository) FindWithRelations(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		b      booking.Booking
		client booking.Client
		status string
	)

	row := r.db.QueryRow(ctx, findBookingQuery, id)
	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.EventType,
		&b.EventDate,
		&b.EventTime,
		&b.EventTimezone,
		&b.Location,
		&b.PackageName,
		&b.PackagePrice,
		&b.DepositAmount,
		&status,
		&b.Notes,
		&b.ContractSignedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
		&client.ID,
		&client.FirstName,
		&client.LastName,
		&client.Email,
		&client.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking", err)
	}
	b.Status = booking.Status(status)
	b.Client = &client

	if b.Payments, err = r.listPayments(ctx, id); err != nil {
		return nil, err
	}
	if b.Galleries, err = r.listGalleries(ctx, id); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	tag, err := r.db.Exec(ctx, updateBookingQuery,
		b.ID,
		b.Status.String(),
		b.EventType,
		b.EventDate,
		b.EventTime,
		b.EventTimezone,
		b.Location,
		b.PackageName,
		b.PackagePrice,
		b.DepositAmount,
		b.Notes,
		b.ContractSignedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to save booking", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (r *BookingRepository) ExecSchema(ctx context.Context, stmt string) error {
	if _, err := r.db.Exec(ctx, stmt); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "schema statement failed", err)
	}
	return nil
}

func (r *BookingRepository) listPayments(ctx context.Context, bookingID uuid.UUID) ([]booking.Payment, error) {
	rows, err := r.db.Query(ctx, listPaymentsQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load payments", err)
	}
	defer rows.Close()

	var payments []booking.Payment
	for rows.Next() {
		var (
			p      booking.Payment
			status string
		)
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan payment", err)
		}
		p.Status = booking.PaymentStatus(status)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read payments", err)
	}
	return payments, nil
}

func (r *BookingRepository) listGalleries(ctx context.Context, bookingID uuid.UUID) ([]booking.Gallery, error) {
	rows, err := r.db.Query(ctx, listGalleriesQuery, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load galleries", err)
	}
	defer rows.Close()

	var galleries []booking.Gallery
	for rows.Next() {
		var (
			g      booking.Gallery
			status string
		)
		if err := rows.Scan(&g.ID, &g.BookingID, &g.Title, &status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan gallery", err)
		}
		g.Status = booking.GalleryStatus(status)
		galleries = append(galleries, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read galleries", err)
	}
	return galleries, nil
}
