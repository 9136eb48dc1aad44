package config

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Decode builds a Model from a document object. It also reports which
// layout-wide settings the document set, so that several documents can be
// merged.
func Decode(doc cty.Value) (*Model, Settings, error) {
	m := NewModel()
	var set Settings

	if doc.Type() == cty.NilType || doc.IsNull() {
		return m, set, nil
	}
	if !isObject(doc) {
		return nil, set, fmt.Errorf("layout document must be an object, got %s", doc.Type().FriendlyName())
	}

	for key, val := range doc.AsValueMap() {
		if val.IsNull() {
			continue
		}
		var err error
		switch key {
		case "axes":
			err = decodeAxes(m, val)
		case "data":
			err = decodeTraces(m, val)
		case "font":
			err = decodeFont(m, val)
			set.Font = true
		case "plot_bgcolor":
			m.BgColor, err = asString(key, val)
			set.BgColor = true
		case "calendar":
			m.Calendar, err = asString(key, val)
			set.Calendar = true
		case "editable":
			if !val.Type().Equals(cty.Bool) {
				err = fmt.Errorf("editable must be a bool, got %s", val.Type().FriendlyName())
			} else {
				m.Editable = val.True()
				set.Editable = true
			}
		default:
			err = fmt.Errorf("unknown layout attribute %q", key)
		}
		if err != nil {
			return nil, set, err
		}
	}
	return m, set, nil
}

func decodeAxes(m *Model, val cty.Value) error {
	if !isObject(val) {
		return fmt.Errorf("axes must be an object keyed by axis name, got %s", val.Type().FriendlyName())
	}
	for name, attrs := range val.AsValueMap() {
		if err := ValidateAxisName(name); err != nil {
			return err
		}
		if attrs.IsNull() {
			attrs = cty.EmptyObjectVal
		}
		if !isObject(attrs) {
			return fmt.Errorf("axis %q must be an object, got %s", name, attrs.Type().FriendlyName())
		}
		m.setAxis(&Axis{Name: name, Attrs: attrs})
	}
	return nil
}

func decodeTraces(m *Model, val cty.Value) error {
	if !isList(val) {
		return fmt.Errorf("data must be a list of traces, got %s", val.Type().FriendlyName())
	}
	for i, raw := range val.AsValueSlice() {
		tr, err := decodeTrace(len(m.Traces), raw)
		if err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
		m.Traces = append(m.Traces, tr)
	}
	return nil
}

func decodeTrace(index int, raw cty.Value) (*Trace, error) {
	if raw.IsNull() || !isObject(raw) {
		return nil, errors.New("must be an object")
	}
	tr := &Trace{
		Index:   index,
		Type:    "scatter",
		XAxis:   "x",
		YAxis:   "y",
		Visible: true,
		Attrs:   raw,
	}

	for key, val := range raw.AsValueMap() {
		if val.IsNull() {
			continue
		}
		var err error
		switch key {
		case "type":
			tr.Type, err = asString(key, val)
		case "xaxis":
			tr.XAxis, err = asAxisRef(key, val)
		case "yaxis":
			tr.YAxis, err = asAxisRef(key, val)
		case "x":
			tr.X, err = asValues(key, val)
		case "y":
			tr.Y, err = asValues(key, val)
		case "visible":
			// "legendonly" still counts as visible.
			tr.Visible = !(val.Type().Equals(cty.Bool) && val.False())
		}
		if err != nil {
			return nil, err
		}
	}
	if tr.XAxis[0] != 'x' || tr.YAxis[0] != 'y' {
		return nil, fmt.Errorf("xaxis must reference an x axis and yaxis a y axis, got %q and %q", tr.XAxis, tr.YAxis)
	}
	return tr, nil
}

func decodeFont(m *Model, val cty.Value) error {
	if !isObject(val) {
		return fmt.Errorf("font must be an object, got %s", val.Type().FriendlyName())
	}
	for key, v := range val.AsValueMap() {
		if v.IsNull() {
			continue
		}
		switch key {
		case "family":
			s, err := asString("font.family", v)
			if err != nil {
				return err
			}
			m.Font.Family = s
		case "color":
			s, err := asString("font.color", v)
			if err != nil {
				return err
			}
			m.Font.Color = s
		case "size":
			if !v.Type().Equals(cty.Number) {
				return fmt.Errorf("font.size must be a number, got %s", v.Type().FriendlyName())
			}
			m.Font.Size, _ = v.AsBigFloat().Float64()
		default:
			return fmt.Errorf("unknown font attribute %q", key)
		}
	}
	return nil
}

func asString(key string, v cty.Value) (string, error) {
	if !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s must be a string, got %s", key, v.Type().FriendlyName())
	}
	return v.AsString(), nil
}

func asAxisRef(key string, v cty.Value) (string, error) {
	s, err := asString(key, v)
	if err != nil {
		return "", err
	}
	if _, err := AxisName(s); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return s, nil
}

func asValues(key string, v cty.Value) ([]cty.Value, error) {
	if !isList(v) {
		return nil, fmt.Errorf("%s must be a list, got %s", key, v.Type().FriendlyName())
	}
	return v.AsValueSlice(), nil
}

func isObject(v cty.Value) bool {
	ty := v.Type()
	return v.IsKnown() && (ty.IsObjectType() || ty.IsMapType())
}

func isList(v cty.Value) bool {
	ty := v.Type()
	return v.IsKnown() && (ty.IsListType() || ty.IsTupleType() || ty.IsSetType())
}
