package hyper

// Direction is the orientation of a link relative to one of its endpoints.
type Direction uint8

const (
	// Incoming means the link points at the endpoint.
	Incoming Direction = iota
	// Outgoing means the link leaves the endpoint.
	Outgoing
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Incoming {
		return Outgoing
	}

	return Incoming
}

// String returns a string representation of the Direction.
func (d Direction) String() string {
	switch d {
	case Incoming:
		return "Incoming"
	case Outgoing:
		return "Outgoing"
	default:
		return "Unknown"
	}
}

// Connection is one entry of an element's adjacency list: the link that
// touches the element and the link's orientation relative to it.
type Connection struct {
	Link Path      `json:"link"`
	Dir  Direction `json:"dir"`
}
