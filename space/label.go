package space

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/simspace/object"
)

// LabelConvention selects how a class label is embedded in a text record.
type LabelConvention uint8

const (
	// LabelLeading treats the first token of every record as an integer label.
	LabelLeading LabelConvention = iota
	// LabelPrefix accepts an optional first token of the form "label:<int>".
	LabelPrefix
	// LabelNone means records carry no label.
	LabelNone
)

const labelPrefix = "label:"

func (c LabelConvention) String() string {
	switch c {
	case LabelLeading:
		return "leading"
	case LabelPrefix:
		return "prefix"
	case LabelNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseLabelConvention maps "leading", "prefix" and "none" to a convention.
func ParseLabelConvention(name string) (LabelConvention, error) {
	switch name {
	case "", "leading":
		return LabelLeading, nil
	case "prefix":
		return LabelPrefix, nil
	case "none":
		return LabelNone, nil
	}
	return LabelLeading, fmt.Errorf("space: unknown label convention %q", name)
}

// extract splits the label off tokens. fallback is returned when the
// record does not carry a label.
func (c LabelConvention) extract(tokens []string, fallback int) (int, []string, error) {
	switch c {
	case LabelLeading:
		if len(tokens) == 0 {
			return fallback, tokens, nil
		}
		label, err := strconv.Atoi(tokens[0])
		if err != nil {
			return 0, nil, errBadLabel
		}
		return label, tokens[1:], nil
	case LabelPrefix:
		if len(tokens) == 0 || !strings.HasPrefix(tokens[0], labelPrefix) {
			return fallback, tokens, nil
		}
		label, err := strconv.Atoi(tokens[0][len(labelPrefix):])
		if err != nil {
			return 0, nil, errBadLabel
		}
		return label, tokens[1:], nil
	default:
		return fallback, tokens, nil
	}
}

// write appends the label of a record to b.
func (c LabelConvention) write(b *strings.Builder, label int) {
	switch c {
	case LabelLeading:
		b.WriteString(strconv.Itoa(label))
	case LabelPrefix:
		if label == object.EmptyLabel {
			return
		}
		b.WriteString(labelPrefix)
		b.WriteString(strconv.Itoa(label))
	}
}
