package types

import "fmt"

// CustomError is a typed error the fiber error handler maps onto the
// JSON error envelope.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
