package user

import "errors"

var (
	ErrEmailExists          = errors.New("email already registered")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrOrderNotFound        = errors.New("order not found")
)
