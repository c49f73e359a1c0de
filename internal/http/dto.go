// Package http реализует HTTP-обработчики и DTO поверх сервиса записи на занятия.
package http

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}
