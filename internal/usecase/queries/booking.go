package queries

import (
	"context"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrForbidden       = errs.New("not allowed to view this booking")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context, status string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context, status string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	// Customers may only see their own bookings.
	if actorRole != user.RoleAdmin && view.UserID != actorID {
		return nil, ErrForbidden
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status string) ([]*BookingView, error) {
	views, err := q.store.FindAll(ctx, status)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return views, nil
}
