package formats

import "fmt"

// Format identifies a fantasy scoring format. The string values double as
// wire identifiers for ADP requests and output file names.
type Format string

const (
	Standard Format = "standard"
	HalfPPR  Format = "half-ppr"
	PPR      Format = "ppr"
)

// All returns the supported formats in canonical order.
func All() []Format {
	return []Format{Standard, HalfPPR, PPR}
}

// Parse maps a user-supplied format name onto a Format.
func Parse(value string) (Format, error) {
	switch Format(value) {
	case Standard, HalfPPR, PPR:
		return Format(value), nil
	case "half_ppr", "half":
		return HalfPPR, nil
	default:
		return "", fmt.Errorf("unknown scoring format %q", value)
	}
}

// ReceptionWeight returns the points awarded per reception in this format.
func (f Format) ReceptionWeight() float64 {
	switch f {
	case PPR:
		return 1
	case HalfPPR:
		return 0.5
	default:
		return 0
	}
}

func (f Format) String() string {
	return string(f)
}

// Slug returns the format name with characters safe for file names.
func (f Format) Slug() string {
	if f == HalfPPR {
		return "half_ppr"
	}
	return string(f)
}
