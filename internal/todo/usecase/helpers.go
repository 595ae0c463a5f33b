package usecase

import (
	"context"
	"fmt"
	"time"

	"vif/internal/model"
	"vif/pkg/gcalendar"
)

const defaultEventDuration = time.Hour

// mirrorToCalendar creates a calendar event for each newly added item.
// Failures are logged and swallowed; the todo list is the source of truth
// and calendar mirroring is best effort.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, added []model.TodoItem, timezone string) {
	if uc.calendar == nil || len(added) == 0 {
		return
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	for _, item := range added {
		req := gcalendar.EventRequest{
			Summary:  eventSummary(item),
			Timezone: timezone,
		}

		start, timeErr := itemStartTime(item, loc)
		if timeErr != nil {
			req.AllDay = true
			req.Date = time.Time(item.Date)
		} else {
			req.StartTime = start
			req.EndTime = start.Add(defaultEventDuration)
		}

		event, evErr := uc.calendar.CreateEvent(ctx, req)
		if evErr != nil {
			uc.l.Warnf(ctx, "calendar mirror failed for %q: %v", item.Text, evErr)
			continue
		}
		uc.l.Infof(ctx, "calendar mirror created event %s for %q", event.ID, item.Text)
	}
}

// itemStartTime combines an item's date and HH:mm time in loc. Items without
// a time are all-day.
func itemStartTime(item model.TodoItem, loc *time.Location) (time.Time, error) {
	if item.Time == "" {
		return time.Time{}, fmt.Errorf("no time set")
	}
	clock, err := time.Parse("15:04", item.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", item.Time, err)
	}

	day := time.Time(item.Date)
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

func eventSummary(item model.TodoItem) string {
	if item.Emoji != "" {
		return item.Emoji + " " + item.Text
	}
	return item.Text
}
