package commands

import (
	"context"
	"io"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/user"

	"github.com/google/uuid"
)

// ProofUpload carries one payment-proof file from the multipart form.
type ProofUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ProofStore persists payment-proof uploads and returns the stored path.
type ProofStore interface {
	Save(ctx context.Context, bookingID uuid.UUID, filename string, content io.Reader, size int64) (string, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
