package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		instant  time.Time
		loc      *time.Location
		expected time.Time
	}{
		{
			name:     "Meio da tarde trunca para meia-noite do mesmo dia",
			instant:  time.Date(2024, 1, 16, 15, 42, 13, 500, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Um segundo depois da virada pertence ao dia novo",
			instant:  time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Um segundo antes da virada pertence ao dia anterior",
			instant:  time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Instante UTC de madrugada ainda é o dia anterior em São Paulo",
			// 2024-01-16 01:30 UTC = 2024-01-15 22:30 em São Paulo (UTC-3)
			instant:  time.Date(2024, 1, 16, 1, 30, 0, 0, time.UTC),
			loc:      saoPaulo,
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, saoPaulo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.instant, tt.loc)
			assert.True(t, got.Equal(tt.expected), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}
