package attrpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		expectErr    bool
		expectedPath *Path
	}{
		{
			name:         "single attribute",
			raw:          "visible",
			expectedPath: &Path{Segments: []Segment{NewSegment("visible")}},
		},
		{
			name: "nested attribute",
			raw:  "title.font.size",
			expectedPath: &Path{
				Segments: []Segment{NewSegment("title"), NewSegment("font"), NewSegment("size")},
			},
		},
		{
			name: "list element",
			raw:  "rangebreaks[3].bounds",
			expectedPath: &Path{
				Segments: []Segment{NewSegmentWithIndex("rangebreaks", 3), NewSegment("bounds")},
			},
		},
		{name: "error - empty string", raw: "", expectErr: true},
		{name: "error - empty segment", raw: "title..text", expectErr: true},
		{name: "error - trailing dot", raw: "title.", expectErr: true},
		{name: "error - bad index", raw: "rangebreaks[x]", expectErr: true},
		{name: "error - leading digit", raw: "2d", expectErr: true},
		{name: "error - hyphen", raw: "tick-len", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedPath.Equal(p), "got %s", p)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a..b") })
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "title.font", Join("title", "font"))
	assert.Equal(t, "font", Join("", "font"))
	assert.Equal(t, "", Join())
	assert.Equal(t, "rangebreaks[0]", Indexed("rangebreaks", 0))
}
