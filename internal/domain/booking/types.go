package booking

// Status is the operator-set status stored on the booking row. Older rows may
// still carry legacy values; the resolver treats every status as a hint only,
// except StatusCancelled which is terminal and authoritative.
type Status string

const (
	StatusPendingDeposit     Status = "pending_deposit"
	StatusUpcoming           Status = "upcoming"
	StatusPendingFullPayment Status = "pending_full_payment"
	StatusPendingDelivery    Status = "pending_delivery"
	StatusCompleted          Status = "completed"
	StatusCancelled          Status = "cancelled"

	// Legacy operator values still present in pre-migration rows.
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusEditing    Status = "editing"
	StatusDelivered  Status = "delivered"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingDeposit, StatusUpcoming, StatusPendingFullPayment,
		StatusPendingDelivery, StatusCompleted, StatusCancelled,
		StatusConfirmed, StatusInProgress, StatusEditing, StatusDelivered:
		return true
	default:
		return false
	}
}

// LifecycleStage is the derived user-facing stage. It is computed fresh on
// every read and never written back to storage.
type LifecycleStage string

const (
	StagePendingDeposit     LifecycleStage = "pending_deposit"
	StageUpcoming           LifecycleStage = "upcoming"
	StagePendingFullPayment LifecycleStage = "pending_full_payment"
	StagePendingDelivery    LifecycleStage = "pending_delivery"
	StageCompleted          LifecycleStage = "completed"
	StageCancelled          LifecycleStage = "cancelled"
)

func (s LifecycleStage) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"

	// PaymentPaid is a legacy synonym for PaymentSucceeded.
	PaymentPaid PaymentStatus = "paid"
)

// CountsAsPaid reports whether a payment in this status contributes to the
// accumulated paid total.
func (s PaymentStatus) CountsAsPaid() bool {
	return s == PaymentSucceeded || s == PaymentPaid
}

type GalleryStatus string

const (
	GalleryDraft     GalleryStatus = "draft"
	GalleryPublished GalleryStatus = "published"
	GalleryArchived  GalleryStatus = "archived"
)

// normalizeStatusHint maps the explicit status to a stage hint. Legacy
// synonyms map to their canonical stages; anything unrecognized yields no
// hint rather than an error.
func normalizeStatusHint(s Status) (LifecycleStage, bool) {
	switch s {
	case StatusPendingDeposit:
		return StagePendingDeposit, true
	case StatusUpcoming, StatusConfirmed:
		return StageUpcoming, true
	case StatusPendingFullPayment, StatusInProgress:
		return StagePendingFullPayment, true
	case StatusPendingDelivery, StatusEditing:
		return StagePendingDelivery, true
	case StatusCompleted, StatusDelivered:
		return StageCompleted, true
	case StatusCancelled:
		return StageCancelled, true
	default:
		return "", false
	}
}
