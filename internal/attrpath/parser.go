package attrpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment, e.g. `font` or `rangebreaks[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_]*)(?:\[(\d+)\])?$`)

// Parse builds a Path from its canonical string form.
func Parse(raw string) (*Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("attribute path cannot be empty")
	}

	p := &Path{}
	for _, segmentStr := range strings.Split(raw, ".") {
		if segmentStr == "" {
			return nil, fmt.Errorf("attribute path %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return nil, fmt.Errorf("invalid attribute path segment %q", segmentStr)
		}

		segment := NewSegment(matches[1])
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("invalid index in segment %q: %w", segmentStr, err)
			}
			segment.Index = index
		}
		p.Segments = append(p.Segments, segment)
	}

	return p, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// paths written into the source code.
func MustParse(raw string) *Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Join concatenates path strings, skipping empty parts.
func Join(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ".")
}

// Indexed renders the path of one element of a list attribute.
func Indexed(name string, index int) string {
	return fmt.Sprintf("%s[%d]", name, index)
}
