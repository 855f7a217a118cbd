//go:build unit

package watertemp_test

import (
	"testing"

	"famboard/internal/domain/watertemp"

	"github.com/stretchr/testify/assert"
)

var thresholds = watertemp.Thresholds{Min: 30, Max: 70}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		temp float64
		want watertemp.Classification
	}{
		{name: "well inside the band", temp: 50, want: watertemp.ClassNormal},
		{name: "exactly at the minimum is normal", temp: 30, want: watertemp.ClassNormal},
		{name: "exactly at the maximum is normal", temp: 70, want: watertemp.ClassNormal},
		{name: "just below the minimum", temp: 29.9, want: watertemp.ClassLow},
		{name: "just above the maximum", temp: 70.1, want: watertemp.ClassHigh},
		{name: "far below", temp: -5, want: watertemp.ClassLow},
		{name: "far above", temp: 95, want: watertemp.ClassHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, watertemp.Classify(tc.temp, thresholds))
		})
	}
}

func TestShouldNotify(t *testing.T) {
	t.Run("notifies only on classification change", func(t *testing.T) {
		assert.True(t, watertemp.ShouldNotify(watertemp.ClassNormal, watertemp.ClassLow))
		assert.True(t, watertemp.ShouldNotify(watertemp.ClassLow, watertemp.ClassNormal))
		assert.True(t, watertemp.ShouldNotify(watertemp.ClassLow, watertemp.ClassHigh))
	})

	t.Run("stays quiet while the classification holds", func(t *testing.T) {
		assert.False(t, watertemp.ShouldNotify(watertemp.ClassNormal, watertemp.ClassNormal))
		assert.False(t, watertemp.ShouldNotify(watertemp.ClassLow, watertemp.ClassLow))
		assert.False(t, watertemp.ShouldNotify(watertemp.ClassHigh, watertemp.ClassHigh))
	})
}
