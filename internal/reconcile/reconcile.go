package reconcile

import "github.com/five82/clipdeck/internal/clip"

// Mode says whether a reconciliation may commit the baseline.
type Mode int

const (
	// ModeBaseline reconciles a full, unfiltered poll result. A change is
	// rendered and then committed as the new baseline.
	ModeBaseline Mode = iota
	// ModeEphemeral reconciles a search result. A change is rendered but the
	// baseline is left untouched.
	ModeEphemeral
)

func (m Mode) String() string {
	switch m {
	case ModeBaseline:
		return "baseline"
	case ModeEphemeral:
		return "ephemeral"
	default:
		return "unknown"
	}
}

// Decision is the outcome of comparing an incoming list with what is on
// screen.
type Decision struct {
	Changed bool
	List    clip.List
	Marks   clip.Marks
	Mode    Mode
	// Discarded is set when the incoming list arrived for a state that no
	// longer applies (a poll during search, or a superseded query).
	Discarded bool
}

// Reconcile compares incoming with reference. When they differ the decision
// carries incoming and marks every entry absent from reference. It has no
// side effects.
func Reconcile(incoming, reference clip.List, mode Mode) Decision {
	return decide(incoming, reference, reference, mode)
}

// decide checks for a change against onScreen and computes marks against
// known. The two only differ for search results, which are compared with the
// previous result but marked relative to the baseline.
func decide(incoming, onScreen, known clip.List, mode Mode) Decision {
	if clip.ListsEqual(incoming, onScreen) {
		return Decision{Mode: mode}
	}
	list := incoming.Clone()
	if list == nil {
		list = clip.List{}
	}
	return Decision{
		Changed: true,
		List:    list,
		Marks:   clip.NewMarks(incoming, known),
		Mode:    mode,
	}
}
