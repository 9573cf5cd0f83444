package api

// User is the authenticated identity returned by the auth endpoints.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MoodTag is the closed set of moods a diary entry can be tagged with.
type MoodTag string

const (
	MoodHappy     MoodTag = "happy"
	MoodCalm      MoodTag = "calm"
	MoodEnergetic MoodTag = "energetic"
	MoodSad       MoodTag = "sad"
	MoodAnxious   MoodTag = "anxious"
	MoodConfused  MoodTag = "confused"
	MoodTired     MoodTag = "tired"
)

// MoodTags lists every valid tag, in the order forms present them.
var MoodTags = []MoodTag{
	MoodHappy, MoodCalm, MoodEnergetic,
	MoodSad, MoodAnxious, MoodConfused, MoodTired,
}

// InsightCategory classifies a server-generated insight.
type InsightCategory string

const (
	CategoryMood      InsightCategory = "mood"
	CategoryMemory    InsightCategory = "memory"
	CategoryCognitive InsightCategory = "cognitive"
	CategoryLanguage  InsightCategory = "language"
	CategoryBehavior  InsightCategory = "behavior"
)

// Title returns the display heading for a category. Unrecognized values
// fall back to a generic heading rather than leaking the raw tag.
func (c InsightCategory) Title() string {
	switch c {
	case CategoryMood:
		return "Mood Analysis"
	case CategoryMemory:
		return "Memory Patterns"
	case CategoryCognitive:
		return "Cognitive Health"
	case CategoryLanguage:
		return "Language Usage"
	case CategoryBehavior:
		return "Behavioral Insights"
	default:
		return "Insight"
	}
}

// Insight is a server-generated observation. Rendered verbatim, server order.
type Insight struct {
	Category InsightCategory `json:"category"`
	Text     string          `json:"insight_text"`
}

// DiaryEntry is a previously saved entry as the server returns it.
type DiaryEntry struct {
	ID            int64   `json:"id"`
	Text          string  `json:"entry_text"`
	MoodTag       MoodTag `json:"mood_tag"`
	MemoryClarity int     `json:"memory_clarity"`
	CreatedAt     string  `json:"created_at"`
}

// EntryDraft is a diary entry under composition, submitted then discarded.
type EntryDraft struct {
	Text          string  `json:"entryText"`
	MoodTag       MoodTag `json:"moodTag"`
	MemoryClarity int     `json:"memoryClarity"`
}

// DailyRecord is one day of the server-computed weekly report.
type DailyRecord struct {
	Day         string  `json:"day"`
	MoodScore   float64 `json:"moodScore"`
	MemoryScore float64 `json:"memoryScore"`
	EntryCount  int     `json:"entryCount"`
}
