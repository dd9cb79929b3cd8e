package constvars

// VCALENDAR container lines. The feed layout is fixed: consumers replace the
// whole calendar on every fetch, so every line below must stay byte-stable.
const (
	ICSBeginCalendar = "BEGIN:VCALENDAR"
	ICSEndCalendar   = "END:VCALENDAR"
	ICSBeginEvent    = "BEGIN:VEVENT"
	ICSEndEvent      = "END:VEVENT"
	ICSVersion       = "VERSION:2.0"
	ICSProdID        = "PRODID:-//svitlo-service//Electricity Outages//EN"
	ICSCalendarName  = "Відключення електроенергії"
	ICSEventURL      = "URL;VALUE=URI:https://static.yasno.ua/kyiv/outages"

	ICSCalendarDescriptionFormat = "Календар планових відключень електроенергії для черги %s"

	ICSTimestampLayout = "20060102T150405Z"
)

// Event wording by day status.
const (
	ICSSummaryPlanned             = "Планове відключення"
	ICSSummaryWaitingSuffix       = " (Орієнтовно)"
	ICSSummaryEmergency           = "⚠️ Аварійні відключення"
	ICSDescriptionPlannedFormat   = "Планове відключення електроенергії для черги %s"
	ICSDescriptionEmergencyFormat = "Аварійні відключення електроенергії для черги %s. Графік не діє."
)

const (
	CalendarFileExtension  = ".ics"
	CalendarAttachmentName = "attachment; filename=calendar.ics"
)

// Redis key spaces owned by the calendar usecase.
const (
	RedisKeyCalendarPrefix = "ics:"
	RedisKeyLastUpdate     = "last_update"
	RedisKeyKnownGroups    = "known_groups"
	RedisKeyRegenLeader    = "regen:leader"
)

const (
	CacheStatusNever = "Never"
)
