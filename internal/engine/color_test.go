package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLToHex(t *testing.T) {
	tt := []struct {
		h, s, l float64
		want    string
	}{
		{0, 100, 50, "#FF0000"},
		{120, 100, 50, "#00FF00"},
		{240, 100, 50, "#0000FF"},
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#FFFFFF"},
		{60, 100, 50, "#FFFF00"},
		{180, 100, 50, "#00FFFF"},
		{300, 100, 50, "#FF00FF"},
		{0, 0, 50, "#808080"},
		// Out-of-range inputs clamp or wrap instead of failing.
		{360, 100, 50, "#FF0000"},
		{-120, 100, 50, "#0000FF"},
		{720, 150, 50, "#FF0000"},
		{0, 100, 150, "#FFFFFF"},
		{0, 100, -10, "#000000"},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(fmt.Sprintf("h=%v s=%v l=%v", tc.h, tc.s, tc.l), func(t *testing.T) {
			assert.Equal(t, tc.want, hslToHex(tc.h, tc.s, tc.l))
		})
	}
}

func TestHSLToHex_AlwaysWellFormed(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		h := r.Float64()*2000 - 1000
		s := r.Float64()*300 - 100
		l := r.Float64()*300 - 100

		c := hslToHex(h, s, l)
		require.Regexp(t, `^#[0-9A-F]{6}$`, c)
	}
}

func TestDerivePalette_Deterministic(t *testing.T) {
	a := derivePalette(0xDEADBEEF, TierRoaring)
	b := derivePalette(0xDEADBEEF, TierRoaring)
	require.Equal(t, a, b)
}

func TestDerivePalette_ColorsDistinct(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	total := 10000
	collisions := 0
	for i := 0; i < total; i++ {
		seed := r.Uint32()
		tier := 1 + int(seed%4)

		pal := derivePalette(seed, tier)
		require.Regexp(t, `^#[0-9A-F]{6}$`, pal.Primary)
		require.Regexp(t, `^#[0-9A-F]{6}$`, pal.Secondary)
		require.Regexp(t, `^#[0-9A-F]{6}$`, pal.Accent)

		if pal.Primary == pal.Secondary || pal.Primary == pal.Accent || pal.Secondary == pal.Accent {
			collisions++
		}
	}

	// Hue separation keeps the three colors apart for at least 99% of seeds.
	assert.LessOrEqual(t, collisions, total/100)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, clamp(5, 0, 10))
	assert.Equal(t, 0.0, clamp(-1, 0, 10))
	assert.Equal(t, 10.0, clamp(11, 0, 10))
}
