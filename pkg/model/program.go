package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgramID string

// NewProgramID generates a new unique ProgramID
func NewProgramID() ProgramID {
	return ProgramID(uuid.New().String())
}

// Program is a saved visual block program
type Program struct {
	ID        ProgramID `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Blocks    []*Block  `json:"blocks" firestore:"blocks"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}

// Block is one node of a visual program. Inputs maps an input slot name to
// the ID of the connected child block; Output is the declared output type
// set the child exposes to its parent.
type Block struct {
	ID     string            `json:"id" firestore:"id"`
	Type   string            `json:"type" firestore:"type"`
	Fields map[string]string `json:"fields,omitempty" firestore:"fields,omitempty"`
	Inputs map[string]string `json:"inputs,omitempty" firestore:"inputs,omitempty"`
	Output []ValueType       `json:"output,omitempty" firestore:"output,omitempty"`
}

// Field returns the value of a named field, or "" if unset
func (b *Block) Field(name string) string {
	if b.Fields == nil {
		return ""
	}
	return b.Fields[name]
}
