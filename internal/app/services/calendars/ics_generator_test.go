package calendars

import (
	"strings"
	"testing"
	"time"

	"svitlo-service/internal/app/models"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compileTime = time.Date(2025, 11, 12, 9, 30, 0, 0, time.UTC)

func scheduleWith(today, tomorrow models.DaySchedule) *models.GroupSchedule {
	return &models.GroupSchedule{
		Today:     today,
		Tomorrow:  tomorrow,
		UpdatedOn: "2025-11-12T08:15:00+02:00",
	}
}

func emptyDay(date string) models.DaySchedule {
	return models.DaySchedule{
		Slots:  []models.OutageSlot{},
		Date:   date,
		Status: models.DayStatusScheduleApplies,
	}
}

func TestGenerateICS(t *testing.T) {
	t.Run("Definite slot becomes one event with offset-correct instants", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{
				Slots:  []models.OutageSlot{{Start: 360, End: 600, Kind: models.SlotKindDefinite}},
				Date:   "2025-11-12T00:00:00+02:00",
				Status: models.DayStatusScheduleApplies,
			},
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		content, err := GenerateICS("3.2", schedule, compileTime)
		require.NoError(t, err)

		assert.Contains(t, content, "DTSTART:20251112T040000Z")
		assert.Contains(t, content, "DTEND:20251112T080000Z")
		assert.Contains(t, content, "SUMMARY:Планове відключення\r\n")
		assert.Contains(t, content, "DESCRIPTION:Планове відключення електроенергії для черги 3.2")
		assert.Contains(t, content, "DTSTAMP:20251112T093000Z")
		assert.Contains(t, content, "LAST-MODIFIED:20251112T093000Z")
		assert.Equal(t, 1, strings.Count(content, "BEGIN:VEVENT"))
	})

	t.Run("Possible and NotPlanned slots never emit events", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{
				Slots: []models.OutageSlot{
					{Start: 0, End: 120, Kind: models.SlotKindPossible},
					{Start: 120, End: 240, Kind: models.SlotKindNotPlanned},
					{Start: 240, End: 300, Kind: models.SlotKindDefinite},
				},
				Date:   "2025-11-12T00:00:00+02:00",
				Status: models.DayStatusScheduleApplies,
			},
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		content, err := GenerateICS("1.1", schedule, compileTime)
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(content, "BEGIN:VEVENT"))
		assert.Contains(t, content, "DTSTART:20251112T020000Z")
	})

	t.Run("WaitingForSchedule marks events as provisional", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{
				Slots:  []models.OutageSlot{{Start: 60, End: 180, Kind: models.SlotKindDefinite}},
				Date:   "2025-11-12T00:00:00+02:00",
				Status: models.DayStatusWaitingForSchedule,
			},
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		content, err := GenerateICS("2.1", schedule, compileTime)
		require.NoError(t, err)

		assert.Contains(t, content, "SUMMARY:Планове відключення (Орієнтовно)")
	})

	t.Run("EmergencyShutdowns yields one full-day event regardless of slots", func(t *testing.T) {
		tests := []struct {
			name  string
			slots []models.OutageSlot
		}{
			{name: "no slots", slots: nil},
			{name: "slots present", slots: []models.OutageSlot{
				{Start: 360, End: 600, Kind: models.SlotKindDefinite},
				{Start: 700, End: 800, Kind: models.SlotKindPossible},
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				schedule := scheduleWith(
					models.DaySchedule{
						Slots:  tt.slots,
						Date:   "2025-11-12T00:00:00+02:00",
						Status: models.DayStatusEmergencyShutdowns,
					},
					emptyDay("2025-11-13T00:00:00+02:00"),
				)

				content, err := GenerateICS("4.2", schedule, compileTime)
				require.NoError(t, err)

				assert.Equal(t, 1, strings.Count(content, "BEGIN:VEVENT"))
				assert.Contains(t, content, "DTSTART:20251111T220000Z")
				assert.Contains(t, content, "DTEND:20251112T220000Z")
				assert.Contains(t, content, "SUMMARY:⚠️ Аварійні відключення")
				assert.Contains(t, content, "Графік не діє")
			})
		}
	})

	t.Run("No qualifying slots still yields a valid empty calendar", func(t *testing.T) {
		schedule := scheduleWith(
			emptyDay("2025-11-12T00:00:00+02:00"),
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		content, err := GenerateICS("5.1", schedule, compileTime)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(content, "BEGIN:VCALENDAR\r\n"))
		assert.True(t, strings.HasSuffix(content, "END:VCALENDAR"))
		assert.NotContains(t, content, "BEGIN:VEVENT")
		assert.Contains(t, content, "VERSION:2.0")
		assert.Contains(t, content, "X-WR-CALDESC:Календар планових відключень електроенергії для черги 5.1")
	})

	t.Run("Today's events precede tomorrow's and ends exceed starts", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{
				Slots:  []models.OutageSlot{{Start: 600, End: 720, Kind: models.SlotKindDefinite}},
				Date:   "2025-11-12T00:00:00+02:00",
				Status: models.DayStatusScheduleApplies,
			},
			models.DaySchedule{
				Slots:  []models.OutageSlot{{Start: 0, End: 240, Kind: models.SlotKindDefinite}},
				Date:   "2025-11-13T00:00:00+02:00",
				Status: models.DayStatusScheduleApplies,
			},
		)

		content, err := GenerateICS("6.2", schedule, compileTime)
		require.NoError(t, err)

		calendar, err := ics.ParseCalendar(strings.NewReader(content))
		require.NoError(t, err)

		events := calendar.Events()
		require.Len(t, events, 2)

		seenUIDs := map[string]bool{}
		var previousStart time.Time
		for i, event := range events {
			start, err := event.GetStartAt()
			require.NoError(t, err)
			end, err := event.GetEndAt()
			require.NoError(t, err)

			assert.True(t, end.After(start), "event end must strictly exceed its start")
			assert.False(t, seenUIDs[event.Id()], "event UIDs must be unique")
			seenUIDs[event.Id()] = true

			if i > 0 {
				assert.True(t, start.After(previousStart), "today's events must precede tomorrow's")
			}
			previousStart = start
		}
	})

	t.Run("Fresh UIDs on every compilation", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{
				Slots:  []models.OutageSlot{{Start: 360, End: 600, Kind: models.SlotKindDefinite}},
				Date:   "2025-11-12T00:00:00+02:00",
				Status: models.DayStatusScheduleApplies,
			},
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		first, err := GenerateICS("3.2", schedule, compileTime)
		require.NoError(t, err)
		second, err := GenerateICS("3.2", schedule, compileTime)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Unparseable date anchor fails compilation", func(t *testing.T) {
		schedule := scheduleWith(
			models.DaySchedule{Date: "not-a-date", Status: models.DayStatusScheduleApplies},
			emptyDay("2025-11-13T00:00:00+02:00"),
		)

		_, err := GenerateICS("1.2", schedule, compileTime)
		assert.Error(t, err)
	})
}
