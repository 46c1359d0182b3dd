package services

// ServiceError is a typed error with an HTTP status code. Controllers map
// it 1:1 onto the response.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func newError(code int, msg string) *ServiceError {
	return &ServiceError{StatusCode: code, Message: msg}
}
