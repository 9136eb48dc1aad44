package attrpath

import (
	"fmt"
	"reflect"
	"strings"
)

// String serializes the path into its canonical form.
func (p *Path) String() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range p.Segments {
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteString(fmt.Sprintf("[%d]", segment.Index))
		}
	}
	return sb.String()
}

// Equal checks two paths for deep equality.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return reflect.DeepEqual(p.Segments, other.Segments)
}

// Parent returns the path without its last segment, or nil for a single
// segment path.
func (p *Path) Parent() *Path {
	if p == nil || len(p.Segments) < 2 {
		return nil
	}
	return &Path{Segments: append([]Segment(nil), p.Segments[:len(p.Segments)-1]...)}
}

// Last returns the final segment.
func (p *Path) Last() Segment {
	return p.Segments[len(p.Segments)-1]
}

// Names returns the segment names, dropping indices.
func (p *Path) Names() []string {
	names := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		names[i] = s.Name
	}
	return names
}
