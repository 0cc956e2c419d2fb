package webhooks

// Event header values the dispatcher recognises.
const (
	pingEvent = "ping"
	pushEvent = "push"
)

// EventKind is the closed set of delivery kinds the dispatcher handles.
// New webhook kinds get a constant here and a switch arm in Dispatch.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventPing
	EventPush
)

// Event pairs the dispatch kind with the raw header value, so unknown
// events keep the name GitHub sent for the 501 response body.
type Event struct {
	Kind EventKind
	Name string
}

// ParseEvent classifies the X-GitHub-Event header value. An absent header
// arrives as the empty string and lands in EventUnknown.
func ParseEvent(name string) Event {
	switch name {
	case pingEvent:
		return Event{Kind: EventPing, Name: name}
	case pushEvent:
		return Event{Kind: EventPush, Name: name}
	default:
		return Event{Kind: EventUnknown, Name: name}
	}
}
