package gcalendar

import "context"

// ICalendar is the calendar surface the task mirror consumes.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
