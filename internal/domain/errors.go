package domain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrBackendUnavailable = errors.New("backend de analítica no disponible")
	ErrUpstreamStatus     = errors.New("el backend respondió con un estado de error")
	ErrBackendNotReady    = errors.New("el backend aún está preparando los datos")
	ErrInvalidPayload     = errors.New("respuesta del backend inválida")
	ErrNotLoaded          = errors.New("el dashboard aún no terminó de cargar")
)

// Códigos estables de falla expuestos en la vista y en los logs.
const (
	CodeNetwork        = "NETWORK"
	CodeUpstreamStatus = "UPSTREAM_STATUS"
	CodeNotReady       = "NOT_READY"
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeTimeout        = "TIMEOUT"
	CodeCanceled       = "CANCELED"
	CodeUnknown        = "UNKNOWN"
)

// UpstreamError respuesta no-2xx del backend. Detail es el campo "detail" de FastAPI si vino.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend HTTP %d", e.StatusCode)
}

// Is permite errors.Is(err, ErrUpstreamStatus); un 503 además equivale a ErrBackendNotReady.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstreamStatus:
		return true
	case ErrBackendNotReady:
		return e.StatusCode == http.StatusServiceUnavailable
	}
	return false
}

// NotReadyError cuerpo {"status":"loading","progress":N} del backend mientras recalcula.
type NotReadyError struct {
	Progress int
	Message  string
}

func (e *NotReadyError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend cargando (%d%%): %s", e.Progress, e.Message)
	}
	return fmt.Sprintf("backend cargando (%d%%)", e.Progress)
}

func (e *NotReadyError) Is(target error) bool { return target == ErrBackendNotReady }

// FailureCode clasifica un error de carga en uno de los códigos estables.
// El orden importa: NOT_READY gana sobre UPSTREAM_STATUS para un 503.
func FailureCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, ErrBackendNotReady):
		return CodeNotReady
	case errors.Is(err, ErrUpstreamStatus):
		return CodeUpstreamStatus
	case errors.Is(err, ErrInvalidPayload):
		return CodeInvalidPayload
	case errors.Is(err, ErrBackendUnavailable):
		return CodeNetwork
	default:
		return CodeUnknown
	}
}

// IsTransient indica si conviene reintentar más tarde (backend cargando o caído).
func IsTransient(err error) bool {
	return errors.Is(err, ErrBackendNotReady) || errors.Is(err, ErrBackendUnavailable)
}
