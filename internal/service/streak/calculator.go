package streak

import (
	"sort"
	"time"

	"animo/internal/domain/streak"
)

// level pairs a streak threshold with its gamification label and the next
// milestone. Evaluated highest first.
type level struct {
	threshold  int
	label      string
	nextTarget int
}

var levels = []level{
	{30, "Leyenda", 50},
	{14, "Experto", 30},
	{7, "Avanzado", 14},
	{3, "En progreso", 7},
	{1, "Comenzando", 3},
	{0, "Sin racha", 3},
}

// Calculator derives streak figures from entry dates. The clock is
// injectable so "today" can be fixed in tests.
type Calculator struct {
	now func() time.Time
}

// NewCalculator creates a calculator using the wall clock
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// NewCalculatorAt creates a calculator with a fixed notion of now
func NewCalculatorAt(now func() time.Time) *Calculator {
	return &Calculator{now: now}
}

// Calculate computes the full streak summary for a set of entry dates.
// Dates may repeat and arrive in any order.
func (c *Calculator) Calculate(dates []time.Time) streak.Streak {
	days := uniqueDays(dates)

	current := c.currentStreak(days)
	lvl := levelFor(current)

	progress := 1.0
	if current < 30 {
		progress = float64(current) / float64(lvl.nextTarget)
		if progress > 1 {
			progress = 1
		}
	}

	return streak.Streak{
		Current:    current,
		Longest:    longestStreak(days),
		TotalDays:  len(days),
		Level:      lvl.label,
		NextTarget: lvl.nextTarget,
		Progress:   progress,
	}
}

// currentStreak counts consecutive days backwards from today, or from
// yesterday when today has no entry yet so an unfinished day does not break
// the run.
func (c *Calculator) currentStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := truncateDay(c.now())

	hasEntryToday := false
	for _, d := range days {
		if d.Equal(today) {
			hasEntryToday = true
			break
		}
	}

	check := today
	if !hasEntryToday {
		check = today.AddDate(0, 0, -1)
	}

	// days is sorted descending
	count := 0
	for _, d := range days {
		if d.After(check) {
			continue
		}
		if d.Equal(check) {
			count++
			check = check.AddDate(0, 0, -1)
			continue
		}
		break
	}

	return count
}

// longestStreak finds the longest run of consecutive days
func longestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest := 0
	run := 1
	// walk oldest to newest; days is sorted descending
	for i := len(days) - 2; i >= 0; i-- {
		if days[i].Equal(days[i+1].AddDate(0, 0, 1)) {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}
	return longest
}

func levelFor(current int) level {
	for _, lvl := range levels {
		if current >= lvl.threshold && current > 0 {
			return lvl
		}
	}
	return levels[len(levels)-1]
}

// uniqueDays truncates to day granularity, deduplicates and sorts newest
// first
func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
