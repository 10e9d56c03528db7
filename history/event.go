package history

// Event is a DML operation captured by an audit trigger
type Event int

const (
	Insert Event = iota
	Update
	Delete
	eventCount
)

// Events lists every audited event in generation order
var Events = [eventCount]Event{Insert, Update, Delete}

// RowImage names the correlation record a trigger reads values from
type RowImage string

const (
	New RowImage = "NEW"
	Old RowImage = "OLD"
)

var eventKeywords = [eventCount]string{
	Insert: "INSERT",
	Update: "UPDATE",
	Delete: "DELETE",
}

// A deleted row only has a pre-image.
var eventImages = [eventCount]RowImage{
	Insert: New,
	Update: New,
	Delete: Old,
}

// String returns the SQL keyword of the event
func (e Event) String() string {
	if !e.valid() {
		return "UNKNOWN"
	}
	return eventKeywords[e]
}

// Image returns the row image the event's trigger records
func (e Event) Image() RowImage {
	if !e.valid() {
		return ""
	}
	return eventImages[e]
}

// Abbrev returns the three letter form used in trigger names
func (e Event) Abbrev() string {
	return e.String()[:3]
}

func (e Event) valid() bool {
	return e >= 0 && e < eventCount
}
