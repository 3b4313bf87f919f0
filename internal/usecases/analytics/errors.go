package analytics

import (
	"errors"
	"fmt"

	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

var (
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrDataSource        = errors.New("falha ao consultar a fonte de métricas")
	ErrDuplicateSnapshot = errors.New("snapshot já existe para este período")
	ErrSnapshotNotFound  = errors.New("snapshot não encontrado")
	ErrInvalidUpdate     = errors.New("atualização de snapshot inválida")
)

// DataSourceError identifica a coleção cuja consulta falhou
type DataSourceError struct {
	Collection domain.Collection
	Err        error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrDataSource.Error(), e.Collection, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrDataSource)
func (e *DataSourceError) Is(target error) bool {
	return target == ErrDataSource
}
