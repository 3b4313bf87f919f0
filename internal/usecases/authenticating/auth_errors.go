package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
)

var (
	ErrInvalidToken      = errors.New("token inválido")
	ErrExpiredToken      = errors.New("token expirado")
	ErrMissingSubject    = errors.New("token sem identificação do usuário")
	ErrMissingSecret     = errors.New("segredo de assinatura não configurado")
	ErrUnexpectedSigning = errors.New("método de assinatura inesperado")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// CodeOf retorna o código de API do erro, ou token inválido quando não houver
func CodeOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}
