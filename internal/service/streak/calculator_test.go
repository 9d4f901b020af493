package streak

import (
	"testing"
	"time"
)

var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	// mid-afternoon, so day truncation is exercised
	return today.Add(15 * time.Hour)
}

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestCurrentStreak(t *testing.T) {
	calc := NewCalculatorAt(fixedNow)

	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no entries", nil, 0},
		{"only today", []time.Time{daysAgo(0)}, 1},
		{"three days ending today", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		// No entry today yet: yesterday anchors the streak instead of
		// breaking it.
		{"three days ending yesterday", []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}, 3},
		{"gap two days ago breaks run", []time.Time{daysAgo(0), daysAgo(1), daysAgo(3)}, 2},
		{"last entry two days ago", []time.Time{daysAgo(2), daysAgo(3)}, 0},
		{"duplicate days count once", []time.Time{daysAgo(0), daysAgo(0).Add(10 * time.Hour), daysAgo(1)}, 2},
		{"unsorted input", []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(tc.dates)
			if got.Current != tc.want {
				t.Fatalf("current = %d, want %d", got.Current, tc.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	calc := NewCalculatorAt(fixedNow)

	cases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no entries", nil, 0},
		{"single day", []time.Time{daysAgo(10)}, 1},
		{"old run longer than current", []time.Time{daysAgo(0), daysAgo(5), daysAgo(6), daysAgo(7), daysAgo(8)}, 4},
		{"run ending today is longest", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(9)}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calc.Calculate(tc.dates)
			if got.Longest != tc.want {
				t.Fatalf("longest = %d, want %d", got.Longest, tc.want)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	calc := NewCalculatorAt(fixedNow)

	cases := []struct {
		days       int
		level      string
		nextTarget int
	}{
		{0, "Sin racha", 3},
		{1, "Comenzando", 3},
		{3, "En progreso", 7},
		{7, "Avanzado", 14},
		{14, "Experto", 30},
		{30, "Leyenda", 50},
	}

	for _, tc := range cases {
		dates := make([]time.Time, tc.days)
		for i := range dates {
			dates[i] = daysAgo(i)
		}

		got := calc.Calculate(dates)
		if got.Current != tc.days {
			t.Fatalf("current = %d, want %d", got.Current, tc.days)
		}
		if got.Level != tc.level {
			t.Fatalf("level for %d days = %q, want %q", tc.days, got.Level, tc.level)
		}
		if got.NextTarget != tc.nextTarget {
			t.Fatalf("nextTarget for %d days = %d, want %d", tc.days, got.NextTarget, tc.nextTarget)
		}
		if tc.days == 30 && got.Progress != 1 {
			t.Fatalf("progress at 30 days = %v, want 1", got.Progress)
		}
	}
}

func TestTotalDays(t *testing.T) {
	calc := NewCalculatorAt(fixedNow)

	dates := []time.Time{daysAgo(0), daysAgo(0), daysAgo(4), daysAgo(9)}
	got := calc.Calculate(dates)
	if got.TotalDays != 3 {
		t.Fatalf("totalDays = %d, want 3", got.TotalDays)
	}
}
