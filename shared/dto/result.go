package dto

import "link/shared/failure"

// Result is the uniform {success, message, data} object handed upward to
// whatever protocol the caller speaks.
type Result[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// ID is the payload of a successful insert.
type ID struct {
	ID int64 `json:"id"`
}

// NewResult folds a value/error pair into a Result. A nil data pointer on
// success renders as "data": null.
func NewResult[T any](message string, data *T, err error) Result[T] {
	if err != nil {
		return Result[T]{
			Success: false,
			Message: failure.GetMessage(err),
		}
	}

	return Result[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Kind returns the failure kind a failed Result was built from.
func Kind(err error) failure.Kind {
	return failure.GetKind(err)
}
