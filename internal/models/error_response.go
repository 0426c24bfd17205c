package models

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"incomplete input"`                      // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"missing feature: age"`      // Дополнительные детали
}
