package create_post_production_order

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель заказа сведения/мастеринга
type Request struct {
	UserID         string   // ID пользователя из сессии
	ProjectName    string   // Название проекта
	Genre          string   // Жанр
	TierID         string   // ID тарифа (basic, professional, premium)
	Stems          []string // Имена файлов стемов
	ReferenceTrack string   // Референс (опционально)
	Notes          string   // Комментарии (опционально)
	CallRequested  bool     // Нужен созвон с инженером
}

// Response модель принятого заказа
type Response struct {
	Order domain.PostProductionOrder
}
