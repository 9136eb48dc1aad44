package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
		rgb       [3]uint8
		alpha     float64
	}{
		{name: "short hex", input: "#444", rgb: [3]uint8{68, 68, 68}, alpha: 1},
		{name: "long hex", input: "#FF8000", rgb: [3]uint8{255, 128, 0}, alpha: 1},
		{name: "rgb", input: "rgb(10, 20, 30)", rgb: [3]uint8{10, 20, 30}, alpha: 1},
		{name: "rgba", input: "rgba(10,20,30,0.5)", rgb: [3]uint8{10, 20, 30}, alpha: 0.5},
		{name: "keyword", input: "White", rgb: [3]uint8{255, 255, 255}, alpha: 1},
		{name: "transparent", input: "transparent", rgb: [3]uint8{0, 0, 0}, alpha: 0},
		{name: "error - garbage", input: "not-a-colour", expectErr: true},
		{name: "error - channel out of range", input: "rgb(300, 0, 0)", expectErr: true},
		{name: "error - bad hex", input: "#12", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				assert.False(t, Valid(tc.input))
				return
			}
			require.NoError(t, err)
			r, g, b := c.RGB255()
			assert.Equal(t, tc.rgb, [3]uint8{r, g, b})
			assert.Equal(t, tc.alpha, c.Alpha)
		})
	}
}

func TestMix(t *testing.T) {
	light := 100 * float64(0xe-0x4) / float64(0xf-0x4)

	assert.Equal(t, "rgb(238, 238, 238)", Mix("#444", "#fff", light))
	assert.Equal(t, "rgb(68, 68, 68)", Mix("#444", "#fff", 0))
	assert.Equal(t, "rgb(255, 255, 255)", Mix("#444", "#fff", 100))
	assert.Equal(t, "rgb(68, 68, 68)", Mix("#444", "bogus", 50))
}
