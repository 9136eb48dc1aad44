package attrpath

// Segment is a single component of a path, e.g. `rangebreaks[2]`.
type Segment struct {
	Name  string
	Index int // -1 when the segment carries no index.
}

// NewSegment creates a segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewSegmentWithIndex creates a segment addressing one list element.
func NewSegmentWithIndex(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex reports whether the segment addresses a list element.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

// Path is a parsed attribute path.
type Path struct {
	Segments []Segment
}
