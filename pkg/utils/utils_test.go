package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "data válida", input: "2025-07-22"},
		{name: "ano bissexto", input: "2024-02-29"},
		{name: "dia inexistente", input: "2025-02-30", wantErr: true},
		{name: "sem zero à esquerda", input: "2025-7-22", wantErr: true},
		{name: "com horário", input: "2025-07-22T10:00:00Z", wantErr: true},
		{name: "vazia", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input, nairobi)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, date.Format(dateLayout))
			assert.Equal(t, nairobi, date.Location())
			assert.Zero(t, date.Hour())
		})
	}
}

func TestGenerateRunID(t *testing.T) {
	first, err := GenerateRunID()
	require.NoError(t, err)
	second, err := GenerateRunID()
	require.NoError(t, err)

	assert.Len(t, first, 8)
	assert.NotEqual(t, first, second)
}
