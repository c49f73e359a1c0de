package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если занятия с таким именем нет в каталоге.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadyRegistered возвращается при повторной записи того же email.
	ErrAlreadyRegistered = errors.New("participant already registered")

	// ErrNotRegistered возвращается при попытке выписать email, которого нет в списке.
	ErrNotRegistered = errors.New("participant not registered")
)
