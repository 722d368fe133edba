package usecase

// DomainError is a business-rule failure the caller can act on: bad input,
// missing record, transition not allowed.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (storage, queue, mail).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func NewInputError(message string) *DomainError {
	return &DomainError{Code: "INPUT", Message: message}
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: "NOT_FOUND", Message: message}
}
