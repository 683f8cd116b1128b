package domain

type UserType string

const (
	UserTypeRegular   UserType = "regular"
	UserTypeShopOwner UserType = "shop_owner"
	UserTypeDelivery  UserType = "delivery"
	UserTypeAdmin     UserType = "admin"
	UserTypeDiaspora  UserType = "diaspora"
)

// IsSelfRegistrable администраторы создаются только вручную.
func (t UserType) IsSelfRegistrable() bool {
	switch t {
	case UserTypeRegular, UserTypeShopOwner, UserTypeDelivery, UserTypeDiaspora:
		return true
	default:
		return false
	}
}

type VerificationStatusType string

const (
	VerificationStatusPending  VerificationStatusType = "pending"
	VerificationStatusApproved VerificationStatusType = "approved"
	VerificationStatusRejected VerificationStatusType = "rejected"
)

type OrderStatusType string

const (
	OrderStatusPending    OrderStatusType = "pending"
	OrderStatusPaid       OrderStatusType = "paid"
	OrderStatusProcessing OrderStatusType = "processing"
	OrderStatusShipped    OrderStatusType = "shipped"
	OrderStatusDelivered  OrderStatusType = "delivered"
	OrderStatusCancelled  OrderStatusType = "cancelled"
)

// DirectionType направление движения средств относительно баланса кошелька.
type DirectionType string

const (
	// DirectionCredit увеличивает баланс.
	DirectionCredit DirectionType = "credit"
	// DirectionDebit уменьшает баланс.
	DirectionDebit DirectionType = "debit"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeCommission TransactionType = "commission"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
	TransactionStatusCancelled TransactionStatusType = "cancelled"
)

type ConfirmationMethodType string

const (
	ConfirmationMethodQRCode ConfirmationMethodType = "qr_code"
	ConfirmationMethodOTP    ConfirmationMethodType = "otp"
	ConfirmationMethodAdmin  ConfirmationMethodType = "admin"
)

type ReportType string

const (
	ReportTypeUser     ReportType = "user"
	ReportTypeProduct  ReportType = "product"
	ReportTypeMessage  ReportType = "message"
	ReportTypeDelivery ReportType = "delivery"
	ReportTypeOther    ReportType = "other"
)

type ReportStatusType string

const (
	ReportStatusPending       ReportStatusType = "pending"
	ReportStatusInvestigating ReportStatusType = "investigating"
	ReportStatusResolved      ReportStatusType = "resolved"
	ReportStatusDismissed     ReportStatusType = "dismissed"
)

// IsFinal возвращает true для статусов, закрывающих жалобу.
func (s ReportStatusType) IsFinal() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}
