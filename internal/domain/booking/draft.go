package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid draft transition")
	ErrDraftIncomplete   = errors.New("draft is missing required selections")
	ErrScheduleNotChosen = errors.New("date, start time and duration must all be chosen")
)

type DraftState string

const (
	StateSelectingField    DraftState = "selecting_field"
	StateSelectingSchedule DraftState = "selecting_schedule"
	StateConfirmingDetails DraftState = "confirming_details"
	StateSubmitted         DraftState = "submitted"
)

// Draft accumulates one user's wizard selections. Nothing is persisted
// until submission; the draft is discarded on completion or abandonment.
//
// Legal transitions:
//
//	SelectingField -> SelectingSchedule   (field chosen)
//	SelectingSchedule -> ConfirmingDetails (date+time+duration chosen, price derived)
//	ConfirmingDetails -> Submitted         (collaborator confirmed creation)
//	SelectingSchedule -> SelectingField    (back; field kept)
//	ConfirmingDetails -> SelectingSchedule (back; schedule discarded, field kept)
type Draft struct {
	state         DraftState
	fieldID       *uuid.UUID
	date          *time.Time
	startTime     *string
	durationHours *int
	totalPrice    int64
}

func NewDraft() *Draft {
	return &Draft{state: StateSelectingField}
}

func (d *Draft) State() DraftState {
	return d.state
}

func (d *Draft) FieldID() *uuid.UUID {
	return d.fieldID
}

func (d *Draft) Date() *time.Time {
	return d.date
}

func (d *Draft) StartTime() *string {
	return d.startTime
}

func (d *Draft) DurationHours() *int {
	return d.durationHours
}

func (d *Draft) TotalPrice() int64 {
	return d.totalPrice
}

// SelectField records the chosen field and advances to schedule selection.
func (d *Draft) SelectField(fieldID uuid.UUID) error {
	if d.state != StateSelectingField {
		return ErrInvalidTransition
	}
	d.fieldID = &fieldID
	d.state = StateSelectingSchedule
	return nil
}

// SelectSchedule records date, start time and duration together with the
// derived total price, advancing to confirmation. All three selections
// must be present before the transition fires.
func (d *Draft) SelectSchedule(date time.Time, startTime string, durationHours int, totalPrice int64) error {
	if d.state != StateSelectingSchedule {
		return ErrInvalidTransition
	}
	if date.IsZero() || startTime == "" || durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return ErrScheduleNotChosen
	}

	d.date = &date
	d.startTime = &startTime
	d.durationHours = &durationHours
	d.totalPrice = totalPrice
	d.state = StateConfirmingDetails
	return nil
}

// Back returns to the previous step, discarding only selections captured
// after that step. The field survives a return to schedule selection, and
// survives a further return to field selection so the user can re-confirm it.
func (d *Draft) Back() error {
	switch d.state {
	case StateConfirmingDetails:
		d.date = nil
		d.startTime = nil
		d.durationHours = nil
		d.totalPrice = 0
		d.state = StateSelectingSchedule
		return nil
	case StateSelectingSchedule:
		d.state = StateSelectingField
		return nil
	default:
		return ErrInvalidTransition
	}
}

// ReadyToSubmit reports whether all four wizard selections are populated
// and the draft is awaiting confirmation. Submission is disallowed
// otherwise; callers must check this before contacting any collaborator.
func (d *Draft) ReadyToSubmit() bool {
	return d.state == StateConfirmingDetails &&
		d.fieldID != nil &&
		d.date != nil &&
		d.startTime != nil &&
		d.durationHours != nil
}

// CompleteSubmission marks the draft submitted after the external
// collaborator confirmed creation. On failure callers simply do not invoke
// this, leaving the draft in ConfirmingDetails for a retry.
func (d *Draft) CompleteSubmission() error {
	if !d.ReadyToSubmit() {
		return ErrDraftIncomplete
	}
	d.state = StateSubmitted
	return nil
}

// Reset restores the initial state, used after submission or abandonment.
func (d *Draft) Reset() {
	*d = Draft{state: StateSelectingField}
}
