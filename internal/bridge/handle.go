package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/axisdefaults/internal/config"
	"github.com/vk/axisdefaults/internal/container"
	"github.com/vk/axisdefaults/internal/layout"
)

// Event names used on the wire.
const (
	EventRelayout = "relayout"
	EventResolved = "axis:resolved"
	EventError    = "axis:error"
)

// documentKeys are the payload members passed through to the layout
// document unchanged.
var documentKeys = []string{"data", "font", "plot_bgcolor", "calendar", "editable"}

// Handle resolves one relayout payload and returns the event to emit with
// its body.
func Handle(ctx context.Context, payload any, opts layout.Options) (string, map[string]any) {
	req, ok := payload.(map[string]any)
	if !ok {
		return EventError, errorReply(uuid.NewString(), "", fmt.Errorf("relayout payload must be an object, got %T", payload))
	}

	id, _ := req["request_id"].(string)
	if id == "" {
		id = uuid.NewString()
	}
	name, _ := req["axis"].(string)

	reply, err := resolve(ctx, req, name, opts)
	if err != nil {
		return EventError, errorReply(id, name, err)
	}
	reply["request_id"] = id
	reply["axis"] = name
	return EventResolved, reply
}

func resolve(ctx context.Context, req map[string]any, name string, opts layout.Options) (map[string]any, error) {
	if name == "" {
		return nil, errors.New("relayout payload has no axis name")
	}
	if err := config.ValidateAxisName(name); err != nil {
		return nil, err
	}

	attrs := req["layout"]
	if attrs == nil {
		attrs = map[string]any{}
	}
	doc := map[string]any{
		"axes": map[string]any{name: attrs},
	}
	for _, key := range documentKeys {
		if v, ok := req[key]; ok {
			doc[key] = v
		}
	}

	v, err := container.FromNative(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid relayout payload: %w", err)
	}
	m, _, err := config.Decode(v)
	if err != nil {
		return nil, fmt.Errorf("invalid relayout payload: %w", err)
	}

	res := layout.Resolve(ctx, m, opts)
	resolvedVal, _ := res.Axis(name)
	resolved, err := container.ToNative(resolvedVal)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resolved axis: %w", err)
	}
	data := make([]any, 0, len(res.Document.Data))
	for _, tr := range res.Document.Data {
		n, err := container.ToNative(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to encode trace: %w", err)
		}
		data = append(data, n)
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return map[string]any{
		"resolved": resolved,
		"data":     data,
		"warnings": warnings,
	}, nil
}

func errorReply(id, name string, err error) map[string]any {
	return map[string]any{
		"request_id": id,
		"axis":       name,
		"error":      err.Error(),
	}
}
