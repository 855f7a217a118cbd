//go:build unit

package present_test

import (
	"strings"
	"testing"

	"famboard/internal/domain/present"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		name, err := present.NewName("  Teapot  ")
		require.NoError(t, err)
		assert.Equal(t, "Teapot", name.String())
	})

	t.Run("rejects empty and whitespace-only", func(t *testing.T) {
		_, err := present.NewName("")
		assert.ErrorIs(t, err, present.ErrEmptyName)

		_, err = present.NewName("   ")
		assert.ErrorIs(t, err, present.ErrEmptyName)
	})

	t.Run("length boundary", func(t *testing.T) {
		_, err := present.NewName(strings.Repeat("a", 50))
		assert.NoError(t, err)

		_, err = present.NewName(strings.Repeat("a", 51))
		assert.ErrorIs(t, err, present.ErrNameTooLong)
	})
}

func TestNewPrice(t *testing.T) {
	t.Run("zero and positive are fine", func(t *testing.T) {
		_, err := present.NewPrice(decimal.Zero)
		assert.NoError(t, err)

		price, err := present.NewPrice(decimal.RequireFromString("19.99"))
		require.NoError(t, err)
		assert.Equal(t, "19.99", price.String())
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := present.NewPrice(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, present.ErrNegativePrice)
	})
}
