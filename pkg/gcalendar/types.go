package gcalendar

import "time"

// EventRequest is the input for creating a calendar event from a todo item.
// AllDay events carry only a calendar date; timed events carry start/end
// instants.
type EventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	AllDay      bool
	Date        time.Time // used when AllDay
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Tokyo"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
