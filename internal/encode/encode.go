// Package encode writes resolved layouts as JSON, YAML, msgpack or HCL.
package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/axisdefaults/internal/container"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
	HCL     Format = "hcl"
)

// Formats lists the supported formats, default first.
func Formats() []Format {
	return []Format{JSON, YAML, MsgPack, HCL}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown output format %q: must be one of %s", s, strings.Join(names, ", "))
}

// Axis is one resolved axis.
type Axis struct {
	Name  string
	Attrs cty.Value
}

// Document is a resolved layout: its axes in name order and the traces.
type Document struct {
	Axes []Axis
	Data []cty.Value
}

// Value renders the document as `{axes = {...}, data = [...]}`.
func (d Document) Value() cty.Value {
	axes := cty.EmptyObjectVal
	if len(d.Axes) > 0 {
		attrs := make(map[string]cty.Value, len(d.Axes))
		for _, a := range d.Axes {
			attrs[a.Name] = a.Attrs
		}
		axes = cty.ObjectVal(attrs)
	}
	data := cty.EmptyTupleVal
	if len(d.Data) > 0 {
		data = cty.TupleVal(d.Data)
	}
	return cty.ObjectVal(map[string]cty.Value{
		"axes": axes,
		"data": data,
	})
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, f Format, doc Document) error {
	var (
		out []byte
		err error
	)
	switch f {
	case JSON:
		out, err = encodeJSON(doc.Value())
	case YAML:
		out, err = encodeYAML(doc.Value())
	case MsgPack:
		out, err = encodeMsgPack(doc.Value())
	case HCL:
		out, err = encodeHCL(doc)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	_, err = w.Write(out)
	return err
}

func encodeJSON(v cty.Value) ([]byte, error) {
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeYAML(v cty.Value) ([]byte, error) {
	native, err := container.ToNative(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(native); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgPack(v cty.Value) ([]byte, error) {
	native, err := container.ToNative(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(native); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
