package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateKey indica que já existe um registro com a mesma chave primária
var ErrDuplicateKey = errors.New("repository: chave duplicada")

const uniqueViolationCode = pq.ErrorCode("23505")

// isUniqueViolation verifica se o erro do driver é uma violação de unicidade
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
