package blocks

import (
	"github.com/voxlab/blockforge/pkg/model"
)

// ResolveFieldOptions returns the selectable fields for an accessor block
// whose object input declares the given output types. With no connected
// object (nil or empty type set) it returns the default union list. The
// resolver is called on every render of the dropdown, so it is pure and
// allocates only the returned slice.
func ResolveFieldOptions(types []model.ValueType) []model.FieldOption {
	for _, known := range model.ValueTypePriority {
		for _, t := range types {
			if t == known {
				opts := model.FieldOptions[known]
				out := make([]model.FieldOption, len(opts))
				copy(out, opts)
				return out
			}
		}
	}
	return DefaultFieldOptions()
}

// DefaultFieldOptions returns the union of all field options across every
// value type, de-duplicated by field code, in first-seen order of the type
// priority table. Every field code appears exactly once.
func DefaultFieldOptions() []model.FieldOption {
	seen := make(map[model.FieldCode]bool)
	var out []model.FieldOption
	for _, t := range model.ValueTypePriority {
		for _, opt := range model.FieldOptions[t] {
			if seen[opt.Code] {
				continue
			}
			seen[opt.Code] = true
			out = append(out, opt)
		}
	}
	return out
}
