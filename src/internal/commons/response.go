package commons

import "strings"

// Response is the JSON envelope returned by every endpoint.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// ValidationResponse reports each "; "-separated problem in err as its own
// entry so clients can show them field by field.
func ValidationResponse[T any](err error) Response[T] {
	if err == nil {
		return ErrorResponse[T](ErrValidation.Error())
	}

	var problems []string
	for _, problem := range strings.Split(err.Error(), "; ") {
		if problem = strings.TrimSpace(problem); problem != "" {
			problems = append(problems, problem)
		}
	}
	return ErrorResponse[T](ErrValidation.Error(), problems...)
}
