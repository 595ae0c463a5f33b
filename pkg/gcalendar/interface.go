package gcalendar

import "context"

// ICalendar defines the interface for mirroring todos into Google Calendar.
type ICalendar interface {
	CreateEvent(ctx context.Context, req EventRequest) (*Event, error)
}
