package evaluation_test

import (
	"testing"
	"time"

	"go-personnel/internal/evaluation"
	evaluationerrors "go-personnel/internal/evaluation/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCUIP(t *testing.T) {
	c, err := evaluation.ParseCUIP("18MXHGO00012543")
	require.NoError(t, err)
	assert.Equal(t, 18, c.Year)
	assert.Equal(t, "MXHGO", c.Agency)
	assert.Equal(t, "00012543", c.Sequence)

	for _, bad := range []string{"", "18MXHG000012543", "18mxhgo00012543", "1MXHGO00012543", "18MXHGO0001254", "18MXHGO000125430"} {
		_, err := evaluation.ParseCUIP(bad)
		assert.ErrorIs(t, err, evaluationerrors.ErrInvalidCUIP, bad)
	}
}

func TestCUIP_Currency(t *testing.T) {
	c, err := evaluation.ParseCUIP("18MXHGO00012543")
	require.NoError(t, err)

	tests := []struct {
		year    int
		current bool
	}{
		{2018, true},
		{2021, true},
		{2022, false},
		{2026, false},
	}
	for _, tt := range tests {
		now := time.Date(tt.year, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.current, c.IsCurrent(now), tt.year)
		if tt.current {
			assert.NoError(t, c.Validate(now))
		} else {
			assert.ErrorIs(t, c.Validate(now), evaluationerrors.ErrCUIPExpired)
		}
	}
}
