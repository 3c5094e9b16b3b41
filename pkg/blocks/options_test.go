package blocks_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/model"
)

func TestDefaultFieldOptions(t *testing.T) {
	opts := blocks.DefaultFieldOptions()

	expected := []model.FieldCode{
		model.FieldLoc, model.FieldX, model.FieldY, model.FieldZ,
		model.FieldName, model.FieldType, model.FieldColor, model.FieldSize,
	}

	gt.Equal(t, len(opts), len(expected))
	for i, opt := range opts {
		gt.Equal(t, opt.Code, expected[i])
	}

	// every field code appears exactly once
	seen := make(map[model.FieldCode]int)
	for _, opt := range opts {
		seen[opt.Code]++
	}
	for code, n := range seen {
		if n != 1 {
			t.Errorf("field code %s appears %d times", code, n)
		}
	}
}

func TestResolveFieldOptions(t *testing.T) {
	testCases := []struct {
		name     string
		types    []model.ValueType
		expected []model.FieldCode
	}{
		{
			name:     "no connected object falls back to union",
			types:    nil,
			expected: []model.FieldCode{model.FieldLoc, model.FieldX, model.FieldY, model.FieldZ, model.FieldName, model.FieldType, model.FieldColor, model.FieldSize},
		},
		{
			name:     "mob",
			types:    []model.ValueType{model.ValueTypeMob},
			expected: []model.FieldCode{model.FieldLoc, model.FieldName, model.FieldType, model.FieldColor},
		},
		{
			name:     "block object",
			types:    []model.ValueType{model.ValueTypeBlockObject},
			expected: []model.FieldCode{model.FieldLoc, model.FieldName, model.FieldType, model.FieldSize, model.FieldColor},
		},
		{
			name:     "location wins over mob by priority",
			types:    []model.ValueType{model.ValueTypeMob, model.ValueTypeLocation},
			expected: []model.FieldCode{model.FieldLoc, model.FieldX, model.FieldY, model.FieldZ},
		},
		{
			name:     "time",
			types:    []model.ValueType{model.ValueTypeTime},
			expected: []model.FieldCode{model.FieldLoc},
		},
		{
			name:     "unknown type falls back to union",
			types:    []model.ValueType{model.ValueType("CHAT")},
			expected: []model.FieldCode{model.FieldLoc, model.FieldX, model.FieldY, model.FieldZ, model.FieldName, model.FieldType, model.FieldColor, model.FieldSize},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := blocks.ResolveFieldOptions(tc.types)
			gt.Equal(t, len(opts), len(tc.expected))
			for i, opt := range opts {
				gt.Equal(t, opt.Code, tc.expected[i])
			}
		})
	}
}

func TestResolveFieldOptionsDoesNotAliasTable(t *testing.T) {
	opts := blocks.ResolveFieldOptions([]model.ValueType{model.ValueTypeMob})
	opts[0].Label = "mutated"

	again := blocks.ResolveFieldOptions([]model.ValueType{model.ValueTypeMob})
	gt.Equal(t, again[0].Label, "location")
}
