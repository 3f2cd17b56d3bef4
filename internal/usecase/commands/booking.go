package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/schedule"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/proofstore"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound           = errs.New("field not found")
	ErrFieldUnavailable        = errs.New("field is not open for booking")
	ErrSlotUnavailable         = errs.New("selected time slot is not available")
	ErrBookingConflict         = errs.New("booking conflicts with an existing reservation")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrProofTooLarge           = errs.New("payment proof exceeds size limit")
	ErrProofStoreFailed        = errs.New("failed to store payment proof")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	UserID        uuid.UUID
	FieldID       uuid.UUID
	Date          time.Time
	StartTime     string
	DurationHours int
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string
	Note          *string
	Proof         *ProofUpload
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	bookingStore queries.BookingReadStore
	fieldStore   queries.FieldReadStore
	availability queries.AvailabilityQueries
	proofStore   ProofStore
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	bookingStore queries.BookingReadStore,
	fieldStore queries.FieldReadStore,
	availability queries.AvailabilityQueries,
	proofStore ProofStore,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		bookingStore: bookingStore,
		fieldStore:   fieldStore,
		availability: availability,
		proofStore:   proofStore,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	fieldView, err := c.fieldStore.FindByID(ctx, params.FieldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, errs.Wrap(err, "failed to find field")
	}
	if !fieldView.IsActive {
		return nil, ErrFieldUnavailable
	}

	slot, err := c.resolveSlot(ctx, params)
	if err != nil {
		return nil, err
	}

	totalPrice := booking.TotalPrice(fieldView.PricePerHour, slot.PriceMultiplier, params.DurationHours)

	entity, err := c.buildBooking(params, totalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if params.Proof != nil {
		path, perr := c.proofStore.Save(ctx, entity.ID(), params.Proof.Filename, params.Proof.Content, params.Proof.Size)
		if perr != nil {
			if errors.Is(perr, proofstore.ErrTooLarge) {
				return nil, ErrProofTooLarge
			}
			return nil, errs.Mark(perr, ErrProofStoreFailed)
		}
		entity.AttachProof(path)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.bookingStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"booking_id", entity.ID(),
		"field_id", params.FieldID,
		"date", params.Date.Format("2006-01-02"),
		"start", params.StartTime,
		"total_price", totalPrice)

	return view, nil
}

// resolveSlot checks the chosen start slot against the derived schedule and
// the requested range against existing bookings.
func (c *bookingCommandsImpl) resolveSlot(ctx context.Context, params CreateBookingParams) (queries.TimeSlotView, error) {
	availability, err := c.availability.ForDate(ctx, params.FieldID, params.Date)
	if err != nil {
		return queries.TimeSlotView{}, errs.Wrap(err, "failed to derive availability")
	}
	if !availability.Available {
		return queries.TimeSlotView{}, ErrFieldUnavailable
	}

	var slot *queries.TimeSlotView
	for i := range availability.Slots {
		if availability.Slots[i].Time == params.StartTime {
			slot = &availability.Slots[i]
			break
		}
	}
	if slot == nil || !slot.Available {
		return queries.TimeSlotView{}, ErrSlotUnavailable
	}

	// The whole requested range must be free, not just the first hour.
	startMin, err := schedule.MinutesOfDay(params.StartTime)
	if err != nil {
		return queries.TimeSlotView{}, errs.Mark(err, ErrDomainValidation)
	}
	requested := schedule.Interval{Start: startMin, End: startMin + params.DurationHours*schedule.SlotMinutes}
	for _, s := range availability.Slots {
		if s.Available {
			continue
		}
		slotStart, serr := schedule.MinutesOfDay(s.Time)
		if serr != nil {
			continue
		}
		occupied := schedule.Interval{Start: slotStart, End: slotStart + schedule.SlotMinutes}
		if requested.Overlaps(occupied) {
			return queries.TimeSlotView{}, ErrBookingConflict
		}
	}

	return *slot, nil
}

func (c *bookingCommandsImpl) buildBooking(params CreateBookingParams, totalPrice int64) (*booking.Booking, error) {
	customer, err := booking.NewCustomer(params.CustomerName, params.CustomerPhone, params.CustomerEmail)
	if err != nil {
		return nil, err
	}

	method, err := booking.NewPaymentMethod(params.PaymentMethod)
	if err != nil {
		return nil, err
	}

	note := booking.NewNote("")
	if params.Note != nil {
		note = booking.NewNote(*params.Note)
	}

	return booking.NewBooking(
		params.FieldID,
		params.UserID,
		params.Date,
		params.StartTime,
		params.DurationHours,
		totalPrice,
		customer,
		method,
		note,
	)
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, parsed); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := booking.NewPaymentStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookingRepo.UpdatePaymentStatus(ctx, id, parsed); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
