package container

import (
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// ToNative converts a cty.Value into plain Go values: map[string]any,
// []any, string, float64 and bool. Null becomes nil.
func ToNative(val cty.Value) (any, error) {
	if val.Type() == cty.NilType || !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if ty.IsPrimitiveType() {
		switch {
		case ty.Equals(cty.String):
			return val.AsString(), nil
		case ty.Equals(cty.Number):
			f, _ := val.AsBigFloat().Float64()
			return f, nil
		case ty.Equals(cty.Bool):
			return val.True(), nil
		default:
			return nil, fmt.Errorf("unsupported primitive type: %s", ty.FriendlyName())
		}
	}
	if ty.IsObjectType() || ty.IsMapType() {
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			native, err := ToNative(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = native
		}
		return out, nil
	}
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			native, err := ToNative(v)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty.Type for conversion: %s", ty.FriendlyName())
}

// FromNative converts decoded JSON/YAML/TOML data into a cty.Value.
// Objects become cty objects and arrays become tuples.
func FromNative(data any) (cty.Value, error) {
	if data == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	switch v := data.(type) {
	case cty.Value:
		return v, nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case float32:
		return cty.NumberFloatVal(float64(v)), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case int32:
		return cty.NumberIntVal(int64(v)), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case *big.Float:
		return cty.NumberVal(v), nil
	case time.Time:
		return cty.StringVal(v.UTC().Format("2006-01-02 15:04:05.999")), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(v))
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			ctyVal, err := FromNative(v[key])
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute %q: %w", key, err)
			}
			attrs[key] = ctyVal
		}
		return cty.ObjectVal(attrs), nil
	case []map[string]any:
		elems := make([]any, len(v))
		for i := range v {
			elems[i] = v[i]
		}
		return FromNative(elems)
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for i, item := range v {
			ctyVal, err := FromNative(item)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in element %d: %w", i, err)
			}
			elems = append(elems, ctyVal)
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported type for conversion to cty.Value: %T", v)
	}
}
