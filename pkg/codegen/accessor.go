package codegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/model"
	"github.com/voxlab/blockforge/pkg/utils/logging"
)

// Memory node names the downstream query system resolves filters against
const (
	nodeReferenceObject = "ReferenceObject"
	nodeSelf            = "SelfNode"
	nodePlayer          = "PlayerNode"
)

// Special reference sentinels standing in for concrete coordinates
const (
	specialAgent   = "AGENT"
	specialSpeaker = "SPEAKER"
)

// relativeFallback is the documented default emitted when a location cannot
// be resolved to an absolute reference.
const relativeFallback = `"1"`

// refAttributes maps accessor field codes to ReferenceObject attribute
// names. NAME maps to "tag" and TYPE to "name": the memory system stores
// the user-facing name under "tag" and the kind of object under "name".
var refAttributes = map[model.FieldCode]string{
	model.FieldX:     "x",
	model.FieldY:     "y",
	model.FieldZ:     "z",
	model.FieldName:  "tag",
	model.FieldType:  "name",
	model.FieldSize:  "size",
	model.FieldColor: "color",
}

// AccessorGenerator compiles a value accessor block into the filter
// expression for "the value of field F on object O".
type AccessorGenerator struct{}

// NewAccessor creates the generator for the value accessor block
func NewAccessor() *AccessorGenerator {
	return &AccessorGenerator{}
}

func (g *AccessorGenerator) Type() string {
	return blocks.TypeValueAccessor
}

// Generate dispatches on the connected object's declared type. Every error
// condition degrades to an empty result with a warning; aborting would
// break the surrounding editor session.
func (g *AccessorGenerator) Generate(ctx context.Context, b *model.Block, inputs map[string]Input) string {
	logger := logging.From(ctx)
	field := model.FieldCode(b.Field(blocks.FieldSelector))

	in, ok := inputs[blocks.InputObject]
	if !ok || in.Block == nil || len(in.Block.Output) == 0 {
		logger.Warn("accessor has no typed object connected", "block", b.ID, "field", field)
		return ""
	}

	switch matchValueType(in.Block.Output) {
	case model.ValueTypeMob, model.ValueTypeBlockObject:
		return ReferenceObjectFilter(ctx, in.Code, field)
	case model.ValueTypeLocation:
		return LocationExpression(ctx, in.Code, field)
	case model.ValueTypeTime:
		logger.Warn("time values are not supported by the accessor", "block", b.ID, "field", field)
		return ""
	default:
		logger.Warn("accessor connected to unsupported type",
			"block", b.ID, "types", in.Block.Output)
		return ""
	}
}

// matchValueType returns the first known tag in the declared type set,
// checked in the fixed priority order, or "" if none matches.
func matchValueType(types []model.ValueType) model.ValueType {
	for _, known := range model.ValueTypePriority {
		for _, t := range types {
			if t == known {
				return known
			}
		}
	}
	return ""
}

// ReferenceObjectFilter builds the filter expression extracting field from
// a mob or block object descriptor. Attribute fields produce a
// {"filters": {..., "output": {...}}} document where existing filters from
// the descriptor are shallow-merged under the new "output" key; LOC
// re-wraps the whole descriptor as {"location": <descriptor>}.
func ReferenceObjectFilter(ctx context.Context, descriptor string, field model.FieldCode) string {
	logger := logging.From(ctx)

	var doc struct {
		ReferenceObject *struct {
			Filters map[string]any `json:"filters"`
		} `json:"reference_object"`
	}

	filters := make(map[string]any)
	if err := json.Unmarshal([]byte(descriptor), &doc); err != nil || doc.ReferenceObject == nil {
		logger.Warn("descriptor has no reference_object, using empty filters", "field", field)
	} else {
		for k, v := range doc.ReferenceObject.Filters {
			filters[k] = v
		}
	}

	if field == model.FieldLoc {
		raw := json.RawMessage(descriptor)
		if !json.Valid(raw) {
			logger.Warn("descriptor is not valid JSON, cannot wrap as location", "field", field)
			return ""
		}
		return marshalExpression(ctx, map[string]json.RawMessage{"location": raw})
	}

	attr, ok := refAttributes[field]
	if !ok {
		logger.Warn("unsupported field for reference object", "field", field)
		return ""
	}

	// "output" wins over any same-named key in the descriptor's filters
	filters["output"] = map[string]string{
		"memory_node": nodeReferenceObject,
		"attribute":   attr,
	}

	return marshalExpression(ctx, map[string]any{"filters": filters})
}

// LocationExpression builds the expression extracting a coordinate field
// from a location descriptor. The descriptor may carry a leading label
// before the JSON payload, so parsing starts at the first "{".
func LocationExpression(ctx context.Context, descriptor string, field model.FieldCode) string {
	logger := logging.From(ctx)

	idx := strings.IndexByte(descriptor, '{')
	if idx < 0 {
		logger.Warn("location descriptor has no JSON payload", "field", field)
		return relativeFallback
	}

	var doc struct {
		ReferenceObject *struct {
			SpecialReference json.RawMessage `json:"special_reference"`
		} `json:"reference_object"`
	}
	if err := json.Unmarshal([]byte(descriptor[idx:]), &doc); err != nil || doc.ReferenceObject == nil {
		logger.Warn("relative locations are not supported yet", "field", field)
		return relativeFallback
	}

	// String sentinel: the agent or the speaking player
	var sentinel string
	if err := json.Unmarshal(doc.ReferenceObject.SpecialReference, &sentinel); err == nil {
		switch sentinel {
		case specialAgent:
			return nodeFilter(ctx, nodeSelf, field)
		case specialSpeaker:
			return nodeFilter(ctx, nodePlayer, field)
		default:
			logger.Warn("unknown special reference", "special_reference", sentinel, "field", field)
			return relativeFallback
		}
	}

	// Otherwise an exact coordinate triple: "x, y, z"
	var span struct {
		CoordinateSpan string `json:"coordinate_span"`
	}
	if err := json.Unmarshal(doc.ReferenceObject.SpecialReference, &span); err != nil || span.CoordinateSpan == "" {
		logger.Warn("special reference has no coordinate span", "field", field)
		return relativeFallback
	}

	parts := strings.Split(span.CoordinateSpan, ", ")
	if len(parts) != 3 {
		logger.Warn("coordinate span is not an x, y, z triple",
			"coordinate_span", span.CoordinateSpan, "field", field)
		return relativeFallback
	}

	switch field {
	case model.FieldX:
		return fmt.Sprintf("%q", parts[0])
	case model.FieldY:
		return fmt.Sprintf("%q", parts[1])
	default:
		return fmt.Sprintf("%q", parts[2])
	}
}

// nodeFilter emits the filter naming a memory node with the lowercase field
// name as attribute.
func nodeFilter(ctx context.Context, node string, field model.FieldCode) string {
	return marshalExpression(ctx, map[string]any{
		"filters": map[string]any{
			"output": map[string]string{
				"memory_node": node,
				"attribute":   strings.ToLower(string(field)),
			},
		},
	})
}

// marshalExpression serializes a filter document, degrading to "" on
// failure like every other codegen error.
func marshalExpression(ctx context.Context, doc any) string {
	out, err := json.Marshal(doc)
	if err != nil {
		logging.From(ctx).Warn("failed to serialize filter expression", "error", err)
		return ""
	}
	return string(out)
}
