package record_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-personnel/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	type row struct {
		Fecha    record.Date  `json:"fecha"`
		Vigencia *record.Date `json:"vigencia"`
		Vacia    record.Date  `json:"vacia"`
	}
	v := record.NewDate(2026, time.December, 31)

	b, err := json.Marshal(row{Fecha: record.NewDate(2024, time.May, 10), Vigencia: &v})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2024-05-10","vigencia":"2026-12-31","vacia":null}`, string(b))

	var back row
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, record.NewDate(2024, time.May, 10), back.Fecha)
	assert.True(t, back.Vacia.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d record.Date

	require.NoError(t, d.Scan(time.Date(2025, 1, 31, 0, 0, 0, 0, time.FixedZone("CST", -6*3600))))
	assert.Equal(t, "2025-01-31", d.String())

	require.NoError(t, d.Scan("2024-02-29T00:00:00Z"))
	assert.Equal(t, record.NewDate(2024, time.February, 29), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	val, err := record.NewDate(2024, time.May, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", val)
}
