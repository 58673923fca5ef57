package catalog

import "errors"

var (
	// ErrStudioNotFound возвращается, когда студия не найдена
	ErrStudioNotFound = errors.New("catalog: studio not found")

	// ErrTierNotFound возвращается, когда тариф постпродакшна не найден
	ErrTierNotFound = errors.New("catalog: tier not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("catalog: user not found")

	// ErrInvalidFilter возвращается при некорректном фильтре списка
	ErrInvalidFilter = errors.New("catalog: invalid filter")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInvalidSeed возвращается, когда встроенный каталог не удалось разобрать
	ErrInvalidSeed = errors.New("catalog: invalid seed")
)
