package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannedOutagesResponseDecode(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		payload := `{
			"3.2": {
				"today": {
					"slots": [{"start": 360, "end": 600, "type": "Definite"}],
					"date": "2025-11-12T00:00:00+02:00",
					"status": "ScheduleApplies"
				},
				"tomorrow": {
					"slots": [],
					"date": "2025-11-13T00:00:00+02:00",
					"status": "WaitingForSchedule"
				},
				"updatedOn": "2025-11-12T08:15:00+02:00"
			}
		}`

		var outages PlannedOutagesResponse
		err := json.Unmarshal([]byte(payload), &outages)
		require.NoError(t, err)

		schedule, ok := outages["3.2"]
		require.True(t, ok)
		require.Len(t, schedule.Today.Slots, 1)
		assert.Equal(t, 360, schedule.Today.Slots[0].Start)
		assert.Equal(t, 600, schedule.Today.Slots[0].End)
		assert.Equal(t, SlotKindDefinite, schedule.Today.Slots[0].Kind)
		assert.Equal(t, DayStatusScheduleApplies, schedule.Today.Status)
		assert.Equal(t, DayStatusWaitingForSchedule, schedule.Tomorrow.Status)
	})

	t.Run("Unrecognized slot type is rejected", func(t *testing.T) {
		payload := `{"start": 0, "end": 60, "type": "Maybe"}`

		var slot OutageSlot
		err := json.Unmarshal([]byte(payload), &slot)
		assert.Error(t, err)
	})

	t.Run("Unrecognized day status is rejected", func(t *testing.T) {
		payload := `{"slots": [], "date": "2025-11-12T00:00:00+02:00", "status": "NoIdea"}`

		var day DaySchedule
		err := json.Unmarshal([]byte(payload), &day)
		assert.Error(t, err)
	})

	t.Run("Non-numeric minute offset is rejected", func(t *testing.T) {
		payload := `{"start": "six", "end": 600, "type": "Definite"}`

		var slot OutageSlot
		err := json.Unmarshal([]byte(payload), &slot)
		assert.Error(t, err)
	})
}

func TestDayScheduleAnchor(t *testing.T) {
	t.Run("Anchor preserves the encoded UTC offset", func(t *testing.T) {
		day := DaySchedule{Date: "2025-11-12T00:00:00+02:00"}

		anchor, err := day.Anchor()
		require.NoError(t, err)

		_, offset := anchor.Zone()
		assert.Equal(t, 2*60*60, offset)
		assert.Equal(t, time.Date(2025, 11, 11, 22, 0, 0, 0, time.UTC), anchor.UTC())
	})

	t.Run("Malformed anchor fails", func(t *testing.T) {
		day := DaySchedule{Date: "12.11.2025"}

		_, err := day.Anchor()
		assert.Error(t, err)
	})
}
