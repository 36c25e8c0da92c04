package types

type SessionPhase int

const (
	PhaseReadingHeaders SessionPhase = iota
	PhaseReadingBody
	PhaseDone
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseReadingHeaders:
		return "READING_HEADERS"
	case PhaseReadingBody:
		return "READING_BODY"
	case PhaseDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}
