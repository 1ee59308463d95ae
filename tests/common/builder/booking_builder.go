package builder

import (
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingBuilder produces booking aggregates for table tests. The baseline is
// a freshly created booking: deposit 500, package price 5000, no payments, a
// future event date, and a client with an email on file.
type BookingBuilder struct {
	b *booking.Booking
}

func NewBookingBuilder() *BookingBuilder {
	clientID := uuid.New()
	created := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)

	return &BookingBuilder{
		b: &booking.Booking{
			ID:       uuid.New(),
			ClientID: clientID,
			Client: &booking.Client{
				ID:        clientID,
				FirstName: "Avery",
				LastName:  "Quinn",
				Email:     "avery.quinn@example.com",
				Phone:     "+1-555-0117",
			},
			EventType:     "wedding",
			EventDate:     "2031-06-14",
			EventTime:     "14:00:00",
			EventTimezone: "America/New_York",
			Location:      "Harborview Loft",
			PackageName:   "Gold Collection",
			PackagePrice:  "5000",
			DepositAmount: "500",
			Status:        booking.StatusPendingDeposit,
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}
}

func (bb *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(bb)
	return bb
}

func (bb *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	bb.b.ID = id
	return bb
}

func (bb *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	bb.b.Status = s
	return bb
}

func (bb *BookingBuilder) WithDeposit(amount string) *BookingBuilder {
	bb.b.DepositAmount = amount
	return bb
}

func (bb *BookingBuilder) WithPrice(amount string) *BookingBuilder {
	bb.b.PackagePrice = amount
	return bb
}

func (bb *BookingBuilder) WithEventDate(date string) *BookingBuilder {
	bb.b.EventDate = date
	return bb
}

func (bb *BookingBuilder) WithClientEmail(email string) *BookingBuilder {
	bb.b.Client.Email = email
	return bb
}

func (bb *BookingBuilder) WithoutClient() *BookingBuilder {
	bb.b.Client = nil
	return bb
}

func (bb *BookingBuilder) WithPayment(amount string, status booking.PaymentStatus) *BookingBuilder {
	bb.b.Payments = append(bb.b.Payments, booking.Payment{
		ID:        uuid.New(),
		BookingID: bb.b.ID,
		Amount:    amount,
		Status:    status,
	})
	return bb
}

func (bb *BookingBuilder) WithGallery(status booking.GalleryStatus) *BookingBuilder {
	bb.b.Galleries = append(bb.b.Galleries, booking.Gallery{
		ID:        uuid.New(),
		BookingID: bb.b.ID,
		Title:     "Sneak Peeks",
		Status:    status,
	})
	return bb
}

func (bb *BookingBuilder) Build() *booking.Booking {
	return bb.b
}
