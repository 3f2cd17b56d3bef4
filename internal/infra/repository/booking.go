package repository

import (
	"context"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/pgconv"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository serves both the write side and the read side; the
// handler layer only ever sees it through the narrower interfaces.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const lockFieldQuery = `
SELECT id FROM fields WHERE id = $1 FOR UPDATE
`

// Half-open interval overlap over stored minute offsets. Cancelled
// bookings do not block.
const overlapCountQuery = `
SELECT COUNT(*)
FROM bookings
WHERE field_id = $1
  AND date = $2
  AND status <> 'cancelled'
  AND start_minute < $4
  AND end_minute > $3
`

const insertBookingQuery = `
INSERT INTO bookings (
	id, field_id, user_id, date, start_time, end_time, start_minute, end_minute,
	duration_hours, total_price, customer_name, customer_phone, customer_email,
	payment_method, note, proof_path, status, payment_status, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW()
)
`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	interval, err := b.Interval()
	if err != nil {
		return infra.WrapRepoErr("invalid booking interval", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent bookings for the same field so the overlap
	// check and the insert are atomic.
	var fieldID uuid.UUID
	if err := tx.QueryRow(ctx, lockFieldQuery, b.FieldID()).Scan(&fieldID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("field not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock field", err)
	}

	var overlapping int
	err = tx.QueryRow(ctx, overlapCountQuery, b.FieldID(), b.Date(), interval.Start, interval.End).Scan(&overlapping)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking overlap", err)
	}
	if overlapping > 0 {
		return infra.WrapRepoErr("booking overlaps an existing reservation", nil, infra.KindConflict)
	}

	var note *string
	if !b.Note().IsEmpty() {
		v := b.Note().String()
		note = &v
	}
	var proofPath *string
	if b.ProofPath() != "" {
		v := b.ProofPath()
		proofPath = &v
	}

	_, err = tx.Exec(ctx, insertBookingQuery,
		b.ID(), b.FieldID(), b.UserID(), b.Date(),
		b.StartTime(), b.EndTime(), interval.Start, interval.End,
		b.DurationHours(), b.TotalPrice(),
		b.Customer().Name(), b.Customer().Phone(), b.Customer().Email(),
		b.PaymentMethod().String(), note, proofPath,
		b.Status().String(), b.PaymentStatus().String(),
	)
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err), pgconv.IsExclusionViolation(err):
			return infra.WrapRepoErr("booking conflicts with an existing reservation", err, infra.KindConflict)
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr("referenced row does not exist", err, infra.KindForeignKeyViolated)
		default:
			return infra.WrapRepoErr("failed to insert booking", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET payment_status = $2, updated_at = NOW() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const bookingViewColumns = `
b.id, b.field_id, f.name, f.sport, b.user_id, b.date, b.start_time, b.end_time,
b.duration_hours, b.total_price, b.customer_name, b.customer_phone, b.customer_email,
b.payment_method, b.note, b.proof_path, b.status, b.payment_status, b.created_at, b.updated_at
`

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.FieldID, &v.FieldName, &v.Sport, &v.UserID, &v.Date, &v.StartTime, &v.EndTime,
		&v.DurationHours, &v.TotalPrice, &v.CustomerName, &v.CustomerPhone, &v.CustomerEmail,
		&v.PaymentMethod, &v.Note, &v.ProofPath, &v.Status, &v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+bookingViewColumns+`
FROM bookings b
JOIN fields f ON f.id = b.field_id
WHERE b.id = $1
`, id)

	v, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query booking", err)
	}
	return v, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT b.id, b.field_id, f.name, b.date, b.start_time, b.end_time, b.total_price, b.status, b.created_at
FROM bookings b
JOIN fields f ON f.id = b.field_id
WHERE b.user_id = $1
ORDER BY b.date DESC, b.start_minute DESC
`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.FieldID, &item.FieldName, &item.Date,
			&item.StartTime, &item.EndTime, &item.TotalPrice, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return items, nil
}

func (r *BookingRepository) FindAll(ctx context.Context, status string) ([]*queries.BookingView, error) {
	query := `
SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN fields f ON f.id = b.field_id
`
	args := []any{}
	if status != "" {
		query += `WHERE b.status = $1
`
		args = append(args, status)
	}
	query += `ORDER BY b.date DESC, b.start_minute DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func (r *BookingRepository) FindBookedIntervals(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]queries.BookedIntervalView, error) {
	rows, err := r.pool.Query(ctx, `
SELECT b.start_time, b.end_time
FROM bookings b
WHERE b.field_id = $1
  AND b.date = $2
  AND b.status <> 'cancelled'
ORDER BY b.start_minute
`, fieldID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked intervals", err)
	}
	defer rows.Close()

	var intervals []queries.BookedIntervalView
	for rows.Next() {
		var v queries.BookedIntervalView
		if err := rows.Scan(&v.StartTime, &v.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked interval", err)
		}
		intervals = append(intervals, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked intervals", err)
	}
	return intervals, nil
}
