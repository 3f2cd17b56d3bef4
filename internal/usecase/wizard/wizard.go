// Package wizard drives the multi-step booking flow: field selection,
// schedule check, then confirmation and submission. One draft exists per
// user session; nothing is persisted until submission succeeds.
package wizard

import (
	"context"
	"sync"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNoSession       = errs.New("no active booking session")
	ErrWrongStep       = errs.New("operation not allowed at this wizard step")
	ErrSlotUnavailable = errs.New("selected time slot is not available")
	ErrDraftIncomplete = errs.New("booking draft is incomplete")
)

// DraftView is the wizard state exposed to the handler layer.
type DraftView struct {
	State         string     `json:"state"`
	FieldID       *uuid.UUID `json:"field_id,omitempty"`
	Date          *string    `json:"date,omitempty"`
	StartTime     *string    `json:"start_time,omitempty"`
	DurationHours *int       `json:"duration_hours,omitempty"`
	TotalPrice    int64      `json:"total_price"`
}

// SubmitForm carries the confirmation step's inputs.
type SubmitForm struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string
	Note          *string
	Proof         *commands.ProofUpload
}

type Wizard interface {
	Start(userID uuid.UUID) *DraftView
	SelectField(ctx context.Context, userID, fieldID uuid.UUID) (*DraftView, error)
	CheckSchedule(ctx context.Context, userID uuid.UUID, date time.Time) (*queries.FieldAvailability, error)
	SelectSchedule(ctx context.Context, userID uuid.UUID, date time.Time, startTime string, durationHours int) (*DraftView, error)
	Back(userID uuid.UUID) (*DraftView, error)
	State(userID uuid.UUID) (*DraftView, error)
	Submit(ctx context.Context, userID uuid.UUID, form SubmitForm) (*queries.BookingView, error)
	Abandon(userID uuid.UUID)
}

type wizardImpl struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session

	fields       queries.FieldQueries
	availability queries.AvailabilityQueries
	bookings     commands.BookingCommands
}

func NewWizard(
	fields queries.FieldQueries,
	availability queries.AvailabilityQueries,
	bookings commands.BookingCommands,
) Wizard {
	return &wizardImpl{
		sessions:     make(map[uuid.UUID]*session),
		fields:       fields,
		availability: availability,
		bookings:     bookings,
	}
}

func (w *wizardImpl) Start(userID uuid.UUID) *DraftView {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess := newSession()
	w.sessions[userID] = sess
	return sess.view()
}

func (w *wizardImpl) session(userID uuid.UUID) (*session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sess, ok := w.sessions[userID]
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

func (w *wizardImpl) SelectField(ctx context.Context, userID, fieldID uuid.UUID) (*DraftView, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}

	fieldView, err := w.fields.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	return sess.selectField(fieldView)
}

// CheckSchedule fetches the slot list for the draft's field on the given
// date. Each fetch carries a sequence number; a response that is no longer
// the latest issued is discarded so a stale answer can never overwrite a
// newer one when the user changes the date quickly.
func (w *wizardImpl) CheckSchedule(ctx context.Context, userID uuid.UUID, date time.Time) (*queries.FieldAvailability, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}

	fieldID, err := sess.fieldForSchedule()
	if err != nil {
		return nil, err
	}

	seq := sess.nextSeq()
	avail, err := w.availability.ForDate(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	sess.acceptAvailability(seq, date, avail)
	return avail, nil
}

func (w *wizardImpl) SelectSchedule(ctx context.Context, userID uuid.UUID, date time.Time, startTime string, durationHours int) (*DraftView, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}

	if _, err := sess.fieldForSchedule(); err != nil {
		return nil, err
	}

	slots, ok := sess.slotsFor(date)
	if !ok {
		// No authoritative slot list for this date yet; fetch one now.
		if _, err := w.CheckSchedule(ctx, userID, date); err != nil {
			return nil, err
		}
		if slots, ok = sess.slotsFor(date); !ok {
			return nil, ErrSlotUnavailable
		}
	}

	return sess.selectSchedule(date, startTime, durationHours, slots)
}

func (w *wizardImpl) Back(userID uuid.UUID) (*DraftView, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}
	return sess.back()
}

func (w *wizardImpl) State(userID uuid.UUID) (*DraftView, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// Submit creates the booking through the command layer. The completeness
// guard runs before any collaborator is contacted; on failure the draft
// stays at the confirmation step so the user can retry.
func (w *wizardImpl) Submit(ctx context.Context, userID uuid.UUID, form SubmitForm) (*queries.BookingView, error) {
	sess, err := w.session(userID)
	if err != nil {
		return nil, err
	}

	params, err := sess.submissionParams(userID, form)
	if err != nil {
		return nil, err
	}

	view, err := w.bookings.CreateBooking(ctx, params)
	if err != nil {
		return nil, err
	}

	sess.completeSubmission()

	w.mu.Lock()
	delete(w.sessions, userID)
	w.mu.Unlock()

	return view, nil
}

func (w *wizardImpl) Abandon(userID uuid.UUID) {
	w.mu.Lock()
	delete(w.sessions, userID)
	w.mu.Unlock()
}

// ---------------------------------------------------------------------------

type session struct {
	mu    sync.Mutex
	draft *booking.Draft

	basePricePerHour int64

	// availability sequencing: only the response matching the latest
	// issued request may be cached as authoritative.
	lastSeq   uint64
	slotsDate *time.Time
	slots     []queries.TimeSlotView
}

func newSession() *session {
	return &session{draft: booking.NewDraft()}
}

func (s *session) nextSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	return s.lastSeq
}

func (s *session) acceptAvailability(seq uint64, date time.Time, avail *queries.FieldAvailability) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lastSeq {
		// A newer request was issued while this one was in flight.
		return false
	}
	d := date
	s.slotsDate = &d
	s.slots = avail.Slots
	return true
}

func (s *session) slotsFor(date time.Time) ([]queries.TimeSlotView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotsDate == nil || !sameDate(*s.slotsDate, date) {
		return nil, false
	}
	return s.slots, true
}

func (s *session) selectField(fieldView *queries.FieldView) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.SelectField(fieldView.ID); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}
	s.basePricePerHour = fieldView.PricePerHour
	return s.viewLocked(), nil
}

func (s *session) fieldForSchedule() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.State() != booking.StateSelectingSchedule {
		return uuid.Nil, ErrWrongStep
	}
	return *s.draft.FieldID(), nil
}

func (s *session) selectSchedule(date time.Time, startTime string, durationHours int, slots []queries.TimeSlotView) (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var chosen *queries.TimeSlotView
	for i := range slots {
		if slots[i].Time == startTime {
			chosen = &slots[i]
			break
		}
	}
	if chosen == nil || !chosen.Available {
		return nil, ErrSlotUnavailable
	}

	totalPrice := booking.TotalPrice(s.basePricePerHour, chosen.PriceMultiplier, durationHours)
	if err := s.draft.SelectSchedule(date, startTime, durationHours, totalPrice); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}
	return s.viewLocked(), nil
}

func (s *session) back() (*DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.Back(); err != nil {
		return nil, errs.Mark(err, ErrWrongStep)
	}
	return s.viewLocked(), nil
}

func (s *session) submissionParams(userID uuid.UUID, form SubmitForm) (commands.CreateBookingParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.draft.ReadyToSubmit() {
		return commands.CreateBookingParams{}, ErrDraftIncomplete
	}

	return commands.CreateBookingParams{
		UserID:        userID,
		FieldID:       *s.draft.FieldID(),
		Date:          *s.draft.Date(),
		StartTime:     *s.draft.StartTime(),
		DurationHours: *s.draft.DurationHours(),
		CustomerName:  form.CustomerName,
		CustomerPhone: form.CustomerPhone,
		CustomerEmail: form.CustomerEmail,
		PaymentMethod: form.PaymentMethod,
		Note:          form.Note,
		Proof:         form.Proof,
	}, nil
}

func (s *session) completeSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.draft.CompleteSubmission()
}

func (s *session) view() *DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *session) viewLocked() *DraftView {
	v := &DraftView{
		State:         string(s.draft.State()),
		FieldID:       s.draft.FieldID(),
		StartTime:     s.draft.StartTime(),
		DurationHours: s.draft.DurationHours(),
		TotalPrice:    s.draft.TotalPrice(),
	}
	if d := s.draft.Date(); d != nil {
		formatted := d.Format("2006-01-02")
		v.Date = &formatted
	}
	return v
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
