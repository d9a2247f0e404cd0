package models

import "time"

// Mood represents the trader's recorded state of mind for a day.
type Mood string

const (
	MoodHappy       Mood = "Happy"
	MoodNeutral     Mood = "Neutral"
	MoodSad         Mood = "Sad"
	MoodFrustrated  Mood = "Frustrated"
	MoodDisciplined Mood = "Disciplined"
)

// ValidMood reports whether m is one of the recognized moods.
func ValidMood(m Mood) bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad, MoodFrustrated, MoodDisciplined:
		return true
	}
	return false
}

// DailyNote is a free-text journal note for one calendar day. At most
// one exists per (user, date); the store's upsert-on-conflict enforces
// the uniqueness, not the engine.
type DailyNote struct {
	Date      string // ISO calendar date, "2006-01-02"
	Content   string
	Mood      Mood
	UpdatedAt time.Time
}

// NoteDate formats a timestamp as a DailyNote date key.
func NoteDate(t time.Time) string {
	return t.Format("2006-01-02")
}
