package legend

import "fmt"

// ReliabilityLevel is an engine's declared, fixed reliability category. It is
// ordered: Experimental < Variable < Medium < High. Each level maps to a
// fixed numeric weight used by the consensus analyzer.
type ReliabilityLevel int

const (
	Experimental ReliabilityLevel = iota
	Variable
	Medium
	High
)

// Weight returns the fixed aggregation weight for the level.
func (r ReliabilityLevel) Weight() float64 {
	switch r {
	case Experimental:
		return 0.3
	case Variable:
		return 0.5
	case Medium:
		return 0.7
	case High:
		return 1.0
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (r ReliabilityLevel) String() string {
	switch r {
	case Experimental:
		return "experimental"
	case Variable:
		return "variable"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("ReliabilityLevel(%d)", int(r))
	}
}

// ParseReliability converts a configuration string into a ReliabilityLevel.
func ParseReliability(s string) (ReliabilityLevel, error) {
	switch s {
	case "experimental":
		return Experimental, nil
	case "variable":
		return Variable, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return 0, fmt.Errorf("unknown reliability level %q", s)
	}
}

// EngineType classifies an engine's method. It is used only for filtering an
// engine set, never for weighting.
type EngineType string

const (
	Traditional EngineType = "traditional"
	Scanner     EngineType = "scanner"
	Hybrid      EngineType = "hybrid"
)
