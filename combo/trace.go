package combo

// EventKind enumerates the trace event kinds emitted by Search when
// tracing is enabled (spec 4.F, "Trace").
type EventKind string

const (
	EventPop      EventKind = "pop"
	EventCommit   EventKind = "commit"
	EventExtend   EventKind = "extend"
	EventPrune    EventKind = "prune"
	EventResult   EventKind = "result"
	EventComplete EventKind = "complete"
)

// TraceEvent records one step of the search with enough fields to replay
// the decision (spec 4.F). Not every field is populated for every Kind;
// zero values are omitted from meaning (e.g. Letter is only set on
// extend).
type TraceEvent struct {
	Kind         EventKind
	Score        float64
	Remaining    map[string]int
	Words        []string
	Prefix       string
	Letter       string
	NextPrefix   string
	FrontierSize int
	Combo        string
	WordScores   []float64
	ResultCount  int
}

// Sink receives trace events as the search runs. Search replaces a nil Sink
// with a no-op sink once, up front; events are then still built and handed
// to it, and discarded (spec 9, "Trace as optional observer"). Events never
// influence search decisions.
type Sink interface {
	Emit(TraceEvent)
}

// sliceSink is a Sink that accumulates events in emission order. Search
// returns no event list of its own; events reach a caller only through
// the Sink passed in.
type sliceSink struct {
	events []TraceEvent
}

func (s *sliceSink) Emit(e TraceEvent) {
	s.events = append(s.events, e)
}
