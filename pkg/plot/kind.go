package plot

import "fmt"

// Kind selects the chart shape used for every series.
type Kind string

const (
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
)

var kindByName = map[string]Kind{
	"line":    KindLine,
	"lines":   KindLine,
	"bar":     KindBar,
	"scatter": KindScatter,
}

// ParseKind maps a user-supplied chart kind name to a Kind.
func ParseKind(name string) (Kind, error) {
	kind, ok := kindByName[name]
	if !ok {
		return "", fmt.Errorf("unknown chart kind %q (expected line, bar or scatter)", name)
	}
	return kind, nil
}
