package api

import "fmt"

// ValidationError carries per-field messages returned by the backend on
// HTTP 400 (DRF serializer errors, one list of messages per field). Fields
// keeps only the first message of each field, which is what the forms show.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return "erro de validação"
}

// NetworkError means no server was reached at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "erro de conexão; verifique se o backend está acessível"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError is any non-validation HTTP failure, already reduced to a
// single displayable message.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

func statusFallback(status int, url string) string {
	switch status {
	case 404:
		return fmt.Sprintf("endpoint não encontrado (%s); verifique se a URL está correta", url)
	case 500:
		return "erro interno do servidor; verifique os logs do backend"
	case 403:
		return "acesso negado; verifique as permissões"
	case 401:
		return "não autorizado; verifique a autenticação"
	}

	return ""
}
