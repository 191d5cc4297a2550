package metaclient

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidResource = errors.New("família de recurso desconhecida")
	ErrEmptyFields     = errors.New("lista de campos vazia ou curinga")
	ErrEmptyObjectID   = errors.New("id do objeto não informado")
)

// FetchError é o erro propagado pelo fetcher depois de esgotar (ou dispensar) as retentativas.
// Message carrega o error.message da Graph API sem alteração.
type FetchError struct {
	Resource   Resource
	ObjectID   string
	StatusCode int
	Code       int
	Message    string
	Transient  bool
	Attempts   int
	Err        error
}

func (e *FetchError) Error() string {
	kind := "terminal"
	if e.Transient {
		kind = "transient"
	}

	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	return fmt.Sprintf("meta %s fetch failed for %s %s after %d attempt(s) (status %d, code %d): %s",
		kind, e.Resource, e.ObjectID, e.Attempts, e.StatusCode, e.Code, msg)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTransient verifica se o erro é um FetchError que esgotou as retentativas por falha transitória
func IsTransient(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Transient
	}
	return false
}

// IsTerminal verifica se o erro é um FetchError que não deve ser repetido
func IsTerminal(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return !fetchErr.Transient
	}
	return false
}
