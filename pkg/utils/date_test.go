package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("empty string is unbounded", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("valid date", func(t *testing.T) {
		date, err := ParseDate("2024-01-05")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, "2024-01-05", date.Format("2006-01-02"))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, raw := range []string{"05/01/2024", "2024-1-5", "garbage"} {
			_, err := ParseDate(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestParseCSVList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty string", raw: "", expected: nil},
		{name: "single value", raw: "Electronics", expected: []string{"Electronics"}},
		{name: "multiple values", raw: "Electronics,Clothing", expected: []string{"Electronics", "Clothing"}},
		{name: "trims whitespace", raw: " Electronics , Clothing ", expected: []string{"Electronics", "Clothing"}},
		{name: "drops empty entries", raw: "Electronics,,Clothing,", expected: []string{"Electronics", "Clothing"}},
		{name: "only separators", raw: ",,,", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCSVList(tt.raw))
		})
	}
}
