package domain

import "errors"

var (
	// ErrValidation некорректные входные данные
	ErrValidation = errors.New("validation failed")

	// ErrSignatureMismatch подпись колбэка провайдера не совпала
	ErrSignatureMismatch = errors.New("signature verification failed")

	// ErrPaymentFailed платеж не прошел у провайдера
	ErrPaymentFailed = errors.New("payment failed")

	// ErrNotConfigured отсутствует обязательный секрет провайдера
	ErrNotConfigured = errors.New("payment provider is not configured")
)
