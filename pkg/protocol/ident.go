package protocol

import (
	"strconv"
	"strings"
)

// TaskID is a composite task or queue identifier: a kind plus an index
// unique within that kind. Serialized as "kind(index)".
type TaskID struct {
	Kind  Kind
	Index int
}

// NewID constructs an identifier from kind and index.
func NewID(kind Kind, index int) TaskID { return TaskID{Kind: kind, Index: index} }

// String renders the identifier as "kind(index)".
func (id TaskID) String() string {
	return string(id.Kind) + "(" + strconv.Itoa(id.Index) + ")"
}

// ParseID parses "kind(index)" back into a TaskID. It inverts String
// exactly for every identifier String can produce.
func ParseID(text string) (TaskID, error) {
	open := strings.IndexByte(text, '(')
	if open < 0 {
		return TaskID{}, &FormatError{Input: text, Reason: "missing '('"}
	}
	if !strings.HasSuffix(text, ")") {
		return TaskID{}, &FormatError{Input: text, Reason: "missing trailing ')'"}
	}
	idx, err := strconv.Atoi(text[open+1 : len(text)-1])
	if err != nil {
		return TaskID{}, &FormatError{Input: text, Reason: "index is not an integer"}
	}
	return TaskID{Kind: Kind(text[:open]), Index: idx}, nil
}
