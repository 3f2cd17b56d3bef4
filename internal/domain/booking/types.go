package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Blocks reports whether a booking in this status still occupies its slot.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	default:
		return false
	}
}

func NewPaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.IsValid() {
		return "", ErrInvalidPaymentStatus
	}
	return ps, nil
}

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodEWallet      PaymentMethod = "e_wallet"
	MethodQRIS         PaymentMethod = "qris"
	MethodCash         PaymentMethod = "cash"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodBankTransfer, MethodEWallet, MethodQRIS, MethodCash:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if !method.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return method, nil
}
