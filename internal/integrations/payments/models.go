package payments

import "github.com/shopspring/decimal"

// SubmitRequest данные отправки бронирования
type SubmitRequest struct {
	UserID        string
	StudioID      int64
	Amount        decimal.Decimal
	PaymentMethod string
}

// Receipt результат успешной обработки
type Receipt struct {
	Amount decimal.Decimal
	// Charged true для оплаты онлайн; оплата в студии только резервирует сессию
	Charged bool
}
