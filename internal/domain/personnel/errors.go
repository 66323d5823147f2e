package personnel

import "errors"

var (
	ErrPersonnelNotFound      = errors.New("personnel not found")
	ErrCardNumberExists       = errors.New("card number already exists")
	ErrPersonnelNumberExists  = errors.New("personnel number already exists")
	ErrPersonnelNotAssignable = errors.New("personnel has no work group assignment")
)
