package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// SlotKind is the commitment level the utility attaches to an outage slot.
// Only Definite slots ever become calendar events; Possible and NotPlanned
// describe planning uncertainty the feed must not overstate.
type SlotKind string

const (
	SlotKindNotPlanned SlotKind = "NotPlanned"
	SlotKindDefinite   SlotKind = "Definite"
	SlotKindPossible   SlotKind = "Possible"
)

func (k *SlotKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch SlotKind(raw) {
	case SlotKindNotPlanned, SlotKindDefinite, SlotKindPossible:
		*k = SlotKind(raw)
		return nil
	default:
		return fmt.Errorf("unrecognized outage slot type %q", raw)
	}
}

// DayStatus governs how a whole day is interpreted, overriding slot data
// entirely under EmergencyShutdowns.
type DayStatus string

const (
	DayStatusScheduleApplies    DayStatus = "ScheduleApplies"
	DayStatusWaitingForSchedule DayStatus = "WaitingForSchedule"
	DayStatusEmergencyShutdowns DayStatus = "EmergencyShutdowns"
)

func (s *DayStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch DayStatus(raw) {
	case DayStatusScheduleApplies, DayStatusWaitingForSchedule, DayStatusEmergencyShutdowns:
		*s = DayStatus(raw)
		return nil
	default:
		return fmt.Errorf("unrecognized day status %q", raw)
	}
}

// OutageSlot is one interval within a day, in minutes from local midnight.
type OutageSlot struct {
	Start int      `json:"start" validate:"min=0,max=1440"`
	End   int      `json:"end" validate:"min=0,max=1440,gtfield=Start"`
	Kind  SlotKind `json:"type" validate:"required"`
}

// DaySchedule is one calendar day for one group. Date anchors local midnight
// and carries the UTC offset (e.g. "2025-11-12T00:00:00+02:00").
type DaySchedule struct {
	Slots  []OutageSlot `json:"slots" validate:"dive"`
	Date   string       `json:"date" validate:"required"`
	Status DayStatus    `json:"status" validate:"required"`
}

// Anchor parses the day's date anchor, preserving the encoded UTC offset.
func (d *DaySchedule) Anchor() (time.Time, error) {
	return time.Parse(time.RFC3339, d.Date)
}

type GroupSchedule struct {
	Today     DaySchedule `json:"today"`
	Tomorrow  DaySchedule `json:"tomorrow"`
	UpdatedOn string      `json:"updatedOn"`
}

// PlannedOutagesResponse is the atomic unit of upstream data: one fetch
// yields the schedules for every known group at once.
type PlannedOutagesResponse map[string]GroupSchedule
