// Package report turns the server's per-day analytics records into summary
// statistics and a chart-ready layout. Everything here is pure: binding the
// result to a concrete UI lives elsewhere.
package report

import "github.com/neevamind/mindcli/internal/api"

// BarScale is the chart height in units per score point.
const BarScale = 15

// Summary is the derived weekly overview. HasData is false for an empty
// record set; the averages are only meaningful when it is true.
type Summary struct {
	TotalEntries int
	AvgMood      float64
	AvgMemory    float64
	HasData      bool
}

// Summarize computes the weekly summary over any number of records.
// An empty input yields an explicit no-data summary, never 0/0.
func Summarize(records []api.DailyRecord) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}

	var moodSum, memorySum float64
	for _, r := range records {
		s.TotalEntries += r.EntryCount
		moodSum += r.MoodScore
		memorySum += r.MemoryScore
	}
	s.AvgMood = moodSum / float64(len(records))
	s.AvgMemory = memorySum / float64(len(records))
	s.HasData = true
	return s
}

// DayBars is one day of the chart layout: two bars side by side, labeled
// with the day name and entry count.
type DayBars struct {
	Day          string
	MoodScore    float64
	MemoryScore  float64
	MoodHeight   float64
	MemoryHeight float64
	EntryCount   int
}

// BuildChart derives bar heights for each record, preserving order.
func BuildChart(records []api.DailyRecord) []DayBars {
	bars := make([]DayBars, len(records))
	for i, r := range records {
		bars[i] = DayBars{
			Day:          r.Day,
			MoodScore:    r.MoodScore,
			MemoryScore:  r.MemoryScore,
			MoodHeight:   r.MoodScore * BarScale,
			MemoryHeight: r.MemoryScore * BarScale,
			EntryCount:   r.EntryCount,
		}
	}
	return bars
}
