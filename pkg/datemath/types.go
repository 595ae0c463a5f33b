package datemath

// DateFormatISO is the calendar-date wire format used everywhere in the service.
const DateFormatISO = "2006-01-02"

// Anchors holds the resolved calendar-date anchors embedded into prompts.
type Anchors struct {
	Today    string // YYYY-MM-DD in the parser's timezone
	Tomorrow string // exactly one calendar day after Today
}
