package gregjd

import "testing"

func TestIsLeap(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{0, true},
		{4, true},
		{96, true},
		{100, false},
		{400, true},
		{1900, false},
		{2000, true},
		{2024, true},
		{-4, true},
		{-100, false},
		{-400, true},
	}
	for _, c := range cases {
		if IsLeap(c.year) != c.want {
			t.Errorf("IsLeap(%d): want %v, have %v", c.year, c.want, IsLeap(c.year))
		}
	}
}

func TestYearLen(t *testing.T) {
	cases := []struct {
		year, want int
	}{
		{2023, 365},
		{2024, 366},
		{1900, 365},
		{2000, 366},
		{0, 366},
		{-1, 365},
		{-4, 366},
		{-100, 365},
	}
	for _, c := range cases {
		if YearLen(c.year) != c.want {
			t.Errorf("YearLen(%d): want %d, have %d", c.year, c.want, YearLen(c.year))
		}
	}
}

func TestMonthLen(t *testing.T) {
	wantNormal := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m := 1; m <= 12; m++ {
		if MonthLen(2023, m) != wantNormal[m-1] {
			t.Errorf("MonthLen(2023, %d): want %d, have %d", m, wantNormal[m-1], MonthLen(2023, m))
		}
	}
	if MonthLen(2024, 2) != 29 {
		t.Errorf("February of a leap year: want 29, have %d", MonthLen(2024, 2))
	}
	if MonthLen(-4, 2) != 29 {
		t.Errorf("February of leap year -4: want 29, have %d", MonthLen(-4, 2))
	}
	if MonthLen(-100, 2) != 28 {
		t.Errorf("February of year -100: want 28, have %d", MonthLen(-100, 2))
	}
}

func TestDaysInCompleteYears(t *testing.T) {
	cases := []struct {
		start, end, want int
	}{
		{2024, 2024, 0},
		{0, 1, 366},
		{-1, 0, 365},
		{0, 400, CycleDays},
		{-400, 0, CycleDays},
		{400, 800, CycleDays},
		{-4800, -4400, CycleDays},
	}
	for _, c := range cases {
		if have := DaysInCompleteYears(c.start, c.end); have != c.want {
			t.Errorf("DaysInCompleteYears(%d, %d): want %d, have %d", c.start, c.end, c.want, have)
		}
	}
}

// The closed-form count must match the per-year walk over any range.
func TestDaysInCompleteYearsMatchesLoop(t *testing.T) {
	ranges := [][2]int{
		{-900, 900},
		{-4801, -4797},
		{-403, 403},
		{-1, 2},
		{1999, 2025},
		{29999, 30003},
	}
	for _, r := range ranges {
		for start := r[0]; start <= r[1]; start++ {
			for end := start; end <= r[1]; end += 13 {
				want := daysInCompleteYearsLoop(start, end)
				if have := DaysInCompleteYears(start, end); have != want {
					t.Fatalf("DaysInCompleteYears(%d, %d): want %d, have %d", start, end, want, have)
				}
			}
		}
	}
}
