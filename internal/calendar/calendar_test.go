package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
)

func TestApplyDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		input    cty.Value
		dflt     string
		expected string
	}{
		{name: "explicit", input: cty.StringVal("julian"), dflt: "", expected: "julian"},
		{name: "layout default", input: cty.NilVal, dflt: "thai", expected: "thai"},
		{name: "invalid input uses layout default", input: cty.StringVal("martian"), dflt: "coptic", expected: "coptic"},
		{name: "invalid default uses gregorian", input: cty.NumberIntVal(3), dflt: "martian", expected: Gregorian},
		{name: "nothing", input: cty.NilVal, dflt: "", expected: Gregorian},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in, out := container.New(), container.New()
			in.Set("calendar", tc.input)

			got := ApplyDefaults(in, out, "calendar", tc.dflt)

			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected, out.String("calendar"))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("gregorian"))
	assert.True(t, Valid("ummalqura"))
	assert.False(t, Valid("Gregorian"))
	assert.False(t, Valid(""))
}
