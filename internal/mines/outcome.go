package mines

import "fmt"

type Outcome int8

const (
	InProgress Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("outcome(%d)", int8(o))
	}
}

func (o Outcome) Terminal() bool {
	return o == Lost || o == Won
}

// [Outcome] implements [encoding.TextMarshaler]
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "in_progress":
		*o = InProgress
	case "lost":
		*o = Lost
	case "won":
		*o = Won
	default:
		return fmt.Errorf("unknown outcome %q", text)
	}
	return nil
}
