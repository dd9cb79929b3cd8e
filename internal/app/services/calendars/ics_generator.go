package calendars

import (
	"fmt"
	"strings"
	"time"

	"svitlo-service/internal/app/models"
	"svitlo-service/internal/pkg/constvars"
	"svitlo-service/internal/pkg/utils"
)

// minutesPerDay spans a full day event under emergency shutdowns.
const minutesPerDay = 1440

// calendarEvent is derived transiently during compilation and never persisted
// on its own.
type calendarEvent struct {
	group  string
	start  time.Time
	end    time.Time
	date   string
	status models.DayStatus
}

// dayEvents derives the events of a single day. Under EmergencyShutdowns the
// whole day becomes one event regardless of slot contents; otherwise only
// Definite slots qualify. Event timing depends only on the date anchor and
// the slot minute offsets.
func dayEvents(group string, day models.DaySchedule) ([]calendarEvent, error) {
	anchor, err := day.Anchor()
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", day.Date, err)
	}

	if day.Status == models.DayStatusEmergencyShutdowns {
		return []calendarEvent{{
			group:  group,
			start:  anchor,
			end:    anchor.Add(minutesPerDay * time.Minute),
			date:   day.Date,
			status: day.Status,
		}}, nil
	}

	var events []calendarEvent
	for _, slot := range day.Slots {
		if slot.Kind != models.SlotKindDefinite {
			continue
		}
		events = append(events, calendarEvent{
			group:  group,
			start:  anchor.Add(time.Duration(slot.Start) * time.Minute),
			end:    anchor.Add(time.Duration(slot.End) * time.Minute),
			date:   day.Date,
			status: day.Status,
		})
	}
	return events, nil
}

func formatICSTimestamp(t time.Time) string {
	return t.UTC().Format(constvars.ICSTimestampLayout)
}

func eventWording(event calendarEvent) (summary, description string) {
	summary = constvars.ICSSummaryPlanned
	description = fmt.Sprintf(constvars.ICSDescriptionPlannedFormat, event.group)

	switch event.status {
	case models.DayStatusEmergencyShutdowns:
		summary = constvars.ICSSummaryEmergency
		description = fmt.Sprintf(constvars.ICSDescriptionEmergencyFormat, event.group)
	case models.DayStatusWaitingForSchedule:
		summary += constvars.ICSSummaryWaitingSuffix
	}
	return summary, description
}

// GenerateICS compiles a group's schedule into an ICS document. It is pure:
// now stamps metadata (DTSTAMP/LAST-MODIFIED) only and never affects event
// timing. A schedule with no qualifying slots still yields a valid empty
// calendar.
func GenerateICS(group string, schedule *models.GroupSchedule, now time.Time) (string, error) {
	todayEvents, err := dayEvents(group, schedule.Today)
	if err != nil {
		return "", err
	}
	tomorrowEvents, err := dayEvents(group, schedule.Tomorrow)
	if err != nil {
		return "", err
	}
	events := append(todayEvents, tomorrowEvents...)

	lines := []string{
		constvars.ICSBeginCalendar,
		constvars.ICSVersion,
		constvars.ICSProdID,
		"NAME:" + constvars.ICSCalendarName,
		"X-WR-CALNAME:" + constvars.ICSCalendarName,
		"X-WR-CALDESC:" + fmt.Sprintf(constvars.ICSCalendarDescriptionFormat, group),
	}

	dtstamp := formatICSTimestamp(now)
	for _, event := range events {
		summary, description := eventWording(event)

		lines = append(lines,
			constvars.ICSBeginEvent,
			"UID:"+utils.GenerateEventUID(),
			"SEQUENCE:0",
			"DTSTAMP:"+dtstamp,
			"DTSTART:"+formatICSTimestamp(event.start),
			"DTEND:"+formatICSTimestamp(event.end),
			"SUMMARY:"+summary,
			"DESCRIPTION:"+description,
			constvars.ICSEventURL,
			"LAST-MODIFIED:"+dtstamp,
			constvars.ICSEndEvent,
		)
	}

	lines = append(lines, constvars.ICSEndCalendar)

	return strings.Join(lines, "\r\n"), nil
}
