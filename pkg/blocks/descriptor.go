package blocks

import (
	"github.com/voxlab/blockforge/pkg/model"
)

// Block type names known to the palette and the code generator registry
const (
	TypeValueAccessor = "value_accessor"
	TypeLocation      = "location"
	TypeTime          = "time"
	TypeMob           = "mob"
	TypeBlockObject   = "block_object"
)

// Slot names of the value accessor block
const (
	InputObject   = "OBJECT"
	FieldSelector = "FIELD"
)

// FieldValue is the field slot literal value blocks keep their descriptor
// text in.
const FieldValue = "VALUE"

// Descriptor is the declarative schema of a block type, consumed by the UI
// palette: display template, slots, visual style and tooltip. The backend
// never renders it; it only serves the descriptor and keys generators by
// Type.
type Descriptor struct {
	Type      string            `json:"type"`
	Message   string            `json:"message0"`
	Args      []Arg             `json:"args0,omitempty"`
	Output    []model.ValueType `json:"output,omitempty"`
	Colour    int               `json:"colour"`
	Tooltip   string            `json:"tooltip,omitempty"`
	Extension string            `json:"extension,omitempty"`
}

// Arg is one slot of a block: a value input or a dropdown field
type Arg struct {
	Type  string            `json:"type"`
	Name  string            `json:"name"`
	Check []model.ValueType `json:"check,omitempty"`
}

// Accessor returns the descriptor of the value accessor block. The FIELD
// dropdown is populated at render time by ResolveFieldOptions, registered
// through the named extension.
func Accessor() *Descriptor {
	return &Descriptor{
		Type:    TypeValueAccessor,
		Message: "%1 of %2",
		Args: []Arg{
			{Type: "field_dropdown", Name: FieldSelector},
			{
				Type: "input_value",
				Name: InputObject,
				Check: []model.ValueType{
					model.ValueTypeLocation,
					model.ValueTypeTime,
					model.ValueTypeMob,
					model.ValueTypeBlockObject,
				},
			},
		},
		Colour:    230,
		Tooltip:   "Extract a named field from the connected object, location or time value",
		Extension: "value_accessor_dropdown",
	}
}
