package datafile

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// NewLoader creates a loader that reads JSON, YAML and TOML layout files.
func NewLoader() *config.FileLoader {
	return Register(config.NewFileLoader())
}

// Register adds the JSON, YAML and TOML formats to l.
func Register(l *config.FileLoader) *config.FileLoader {
	return l.
		Register(".json", DecodeJSON).
		Register(".yaml", DecodeYAML).
		Register(".yml", DecodeYAML).
		Register(".toml", DecodeTOML)
}

// DecodeJSON decodes a JSON layout document.
func DecodeJSON(src []byte, filename string) (*config.Model, config.Settings, error) {
	doc, err := parseJSON(src)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to parse JSON file %s: %w", filename, err)
	}
	return decode(doc, filename)
}

// DecodeYAML decodes a YAML layout document.
func DecodeYAML(src []byte, filename string) (*config.Model, config.Settings, error) {
	var raw any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}
	doc, err := fromNative(raw)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}
	return decode(doc, filename)
}

// DecodeTOML decodes a TOML layout document. Traces are written as an
// array of tables:
//
//	[[data]]
//	type = "bar"
//	y    = [1, 2]
func DecodeTOML(src []byte, filename string) (*config.Model, config.Settings, error) {
	raw := make(map[string]any)
	if _, err := toml.Decode(string(src), &raw); err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}
	doc, err := fromNative(raw)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to parse TOML file %s: %w", filename, err)
	}
	return decode(doc, filename)
}

func decode(doc cty.Value, filename string) (*config.Model, config.Settings, error) {
	m, set, err := config.Decode(doc)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to decode layout file %s: %w", filename, err)
	}
	return m, set, nil
}

func parseJSON(src []byte) (cty.Value, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return cty.NilVal, nil
	}
	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return cty.NilVal, err
	}
	return ctyjson.Unmarshal(src, ty)
}

// fromNative converts decoder output into a cty value. YAML mappings with
// non-string keys are rejected and timestamps are kept as wall-clock date
// strings.
func fromNative(raw any) (cty.Value, error) {
	norm, err := normalise(raw)
	if err != nil {
		return cty.NilVal, err
	}
	if norm == nil {
		return cty.NilVal, nil
	}
	return container.FromNative(norm)
}

func normalise(raw any) (any, error) {
	switch v := raw.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			n, err := normalise(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			s, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v must be a string", key)
			}
			n, err := normalise(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s, err)
			}
			out[s] = n
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(v))
		for i, elem := range v {
			n, err := normalise(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			n, err := normalise(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case time.Time:
		return v.Format("2006-01-02 15:04:05.999"), nil
	default:
		return raw, nil
	}
}
