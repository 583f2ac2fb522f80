package negotiation

import "fmt"

// Vibe: тон переговоров. Закрытый набор, нулевое значение не валидно.
type Vibe int

const (
	VibeFriendly Vibe = iota + 1
	VibeDirect
	VibeAnalytical
)

func (v Vibe) String() string {
	switch v {
	case VibeFriendly:
		return "Friendly"
	case VibeDirect:
		return "Direct"
	case VibeAnalytical:
		return "Analytical"
	default:
		return fmt.Sprintf("Vibe(%d)", int(v))
	}
}

func ParseVibe(s string) (Vibe, error) {
	switch s {
	case "Friendly":
		return VibeFriendly, nil
	case "Direct":
		return VibeDirect, nil
	case "Analytical":
		return VibeAnalytical, nil
	default:
		return 0, fmt.Errorf("unknown vibe %q", s)
	}
}

func personaInstruction(v Vibe) (string, error) {
	switch v {
	case VibeFriendly:
		return personaFriendly, nil
	case VibeDirect:
		return personaDirect, nil
	case VibeAnalytical:
		return personaAnalytical, nil
	default:
		return "", fmt.Errorf("%w: no persona for %s", ErrConfiguration, v)
	}
}
