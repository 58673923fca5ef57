package create_post_production_order

import "errors"

var (
	// ErrValidation возвращается при некорректно заполненной форме заказа
	ErrValidation = errors.New("create_post_production_order: validation failed")

	// ErrTierNotFound возвращается, когда тариф не найден
	ErrTierNotFound = errors.New("create_post_production_order: tier not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_post_production_order: internal error")
)
