package analytics

// Result resultado etiquetado de un endpoint: Ok(Value) o Err(Err).
type Result[T any] struct {
	Value T
	Err   error
}

// Ok construye un resultado exitoso.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Err construye un resultado fallido.
func Err[T any](err error) Result[T] { return Result[T]{Err: err} }

// IsOk indica si el endpoint respondió sin error.
func (r Result[T]) IsOk() bool { return r.Err == nil }
