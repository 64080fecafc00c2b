package domain

// Result is the success/error envelope returned at the HTTP boundary.
// Exactly one of Data or Error is meaningful, discriminated by OK.
type Result[T any] struct {
	OK    bool   `json:"ok"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Fail wraps a machine-readable error code in a failed Result.
func Fail[T any](code string) Result[T] {
	return Result[T]{OK: false, Error: code}
}
