package sentiment

import "fmt"

// Label is the three-way sentiment classification of a review.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

var labelNames = map[Label]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

// String returns the display name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalText encodes the label by name.
func (l Label) MarshalText() ([]byte, error) {
	if _, ok := labelNames[l]; !ok {
		return nil, fmt.Errorf("sentiment: unknown label %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a label name.
func (l *Label) UnmarshalText(text []byte) error {
	for label, name := range labelNames {
		if name == string(text) {
			*l = label
			return nil
		}
	}
	return fmt.Errorf("sentiment: unknown label %q", text)
}

// LabelFor maps a compound score to a label: above zero is Positive, below
// zero is Negative, exactly zero is Neutral.
func LabelFor(score float64) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}
