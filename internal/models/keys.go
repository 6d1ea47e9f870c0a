package models

// Store keys shared with the dashboard front end.
const (
	KeyTasks                 = "tasks"
	KeyOtherTasks            = "otherTasks"
	KeyWeeklyProgressTasks   = "weeklyProgressTasks"
	KeyReadingTrackerTasks   = "readingTrackerTasks"
	KeyTodaysFocusItems      = "todaysFocusItems"
	KeyCountdowns            = "countdowns"
	KeyOtherTasksWeeklyStats = "otherTasksWeeklyStats"
	KeyTimeByUser            = "timeByUser"
	KeyDarkMode              = "darkMode"
	KeyVisibility            = "life-dashboard-component-visibility"
)

const (
	FieldComponentVisibility = "componentVisibility"
	FieldExportDate          = "exportDate"
	FieldVersion             = "version"

	DefaultTimeByUser = "00:00:00"
	SnapshotVersion   = "1.0.0"
)

// SequenceKeys are stored as JSON arrays. Snapshot field names match the keys.
var SequenceKeys = []string{
	KeyTasks,
	KeyOtherTasks,
	KeyWeeklyProgressTasks,
	KeyReadingTrackerTasks,
	KeyTodaysFocusItems,
	KeyCountdowns,
}

// RecognizedFields lists the snapshot fields that map onto store keys.
var RecognizedFields = []string{
	KeyTasks,
	KeyOtherTasks,
	KeyWeeklyProgressTasks,
	KeyReadingTrackerTasks,
	KeyTodaysFocusItems,
	KeyCountdowns,
	KeyOtherTasksWeeklyStats,
	KeyTimeByUser,
	FieldComponentVisibility,
}

// ClearKeys is everything ClearAll removes, including keys that never appear in a snapshot.
var ClearKeys = []string{
	KeyTasks,
	KeyOtherTasks,
	KeyWeeklyProgressTasks,
	KeyReadingTrackerTasks,
	KeyTodaysFocusItems,
	KeyCountdowns,
	KeyOtherTasksWeeklyStats,
	KeyTimeByUser,
	KeyDarkMode,
	KeyVisibility,
}

// StoreKeyForField maps a snapshot field to the store key it is persisted under.
func StoreKeyForField(field string) string {
	if field == FieldComponentVisibility {
		return KeyVisibility
	}
	return field
}
