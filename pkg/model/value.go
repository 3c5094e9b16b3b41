package model

import (
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidValueType = goerr.New("invalid value type")
	ErrInvalidFieldCode = goerr.New("invalid field code")
)

// ValueType is the declared output type of a block. Only the tag is
// consulted when resolving field options or choosing a generation strategy.
type ValueType string

const (
	ValueTypeLocation    ValueType = "LOCATION"
	ValueTypeTime        ValueType = "TIME"
	ValueTypeMob         ValueType = "MOB"
	ValueTypeBlockObject ValueType = "BLOCK_OBJECT"
)

// ValueTypePriority is the fixed order in which a connected block's declared
// type set is matched. Both the dropdown resolver and the code generator
// depend on this order.
var ValueTypePriority = []ValueType{
	ValueTypeLocation,
	ValueTypeTime,
	ValueTypeMob,
	ValueTypeBlockObject,
}

// Validate checks if the value type is known
func (t ValueType) Validate() error {
	switch t {
	case ValueTypeLocation, ValueTypeTime, ValueTypeMob, ValueTypeBlockObject:
		return nil
	default:
		return goerr.Wrap(ErrInvalidValueType, "unknown value type", goerr.V("type", t))
	}
}

// FieldCode identifies the field an accessor block extracts
type FieldCode string

const (
	FieldLoc   FieldCode = "LOC"
	FieldX     FieldCode = "X"
	FieldY     FieldCode = "Y"
	FieldZ     FieldCode = "Z"
	FieldName  FieldCode = "NAME"
	FieldType  FieldCode = "TYPE"
	FieldSize  FieldCode = "SIZE"
	FieldColor FieldCode = "COLOR"
)

// Validate checks if the field code is known
func (f FieldCode) Validate() error {
	switch f {
	case FieldLoc, FieldX, FieldY, FieldZ, FieldName, FieldType, FieldSize, FieldColor:
		return nil
	default:
		return goerr.Wrap(ErrInvalidFieldCode, "unknown field code", goerr.V("field", f))
	}
}

// FieldOption is a dropdown entry: display label plus field code
type FieldOption struct {
	Label string    `json:"label"`
	Code  FieldCode `json:"code"`
}

// FieldOptions maps each value type to its ordered list of selectable
// fields. This table is the single source of truth for both the dropdown
// restriction and the code generator: the generator must only be asked for
// field codes the table marks valid for the connected type.
var FieldOptions = map[ValueType][]FieldOption{
	ValueTypeLocation: {
		{Label: "location", Code: FieldLoc},
		{Label: "x", Code: FieldX},
		{Label: "y", Code: FieldY},
		{Label: "z", Code: FieldZ},
	},
	ValueTypeTime: {
		{Label: "location", Code: FieldLoc},
	},
	ValueTypeMob: {
		{Label: "location", Code: FieldLoc},
		{Label: "name", Code: FieldName},
		{Label: "type", Code: FieldType},
		{Label: "color", Code: FieldColor},
	},
	ValueTypeBlockObject: {
		{Label: "location", Code: FieldLoc},
		{Label: "name", Code: FieldName},
		{Label: "type", Code: FieldType},
		{Label: "size", Code: FieldSize},
		{Label: "color", Code: FieldColor},
	},
}
