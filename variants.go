package gregjd

import "math"

// Alternate renditions of both engines, kept behind the same contracts as
// the canonical implementations. The exported functions always use the
// canonical engines; these are exercised by the agreement tests and the
// benchmarks.

// calToJDTerse computes the forward conversion with a single closed leap
// count over all completed years instead of the cycle split, using a trick
// from Robin O'Leary's algorithm (https://pdc.ro.nu/jd-code.html).
func calToJDTerse(y, m, d int) float64 {
	leaps := leapYearsBefore(y)
	days := (y-leaps)*normalYearLen + leaps*leapYearLen + daysFromJan0(y, m, d)
	return JDJan0Year0 + float64(days)
}

// daysInCompleteYearsLoop is the per-year rendition of DaysInCompleteYears,
// used to cross-check the closed form.
func daysInCompleteYearsLoop(startYear, endYear int) int {
	days := 0
	for y := startYear; y < endYear; y++ {
		days += YearLen(y)
	}
	return days
}

// jdToCalSplit is the sign-split rendition of the reverse conversion:
// separate branches on either side of January 1.0 of year 0, with a
// backward month walk from December on the negative branch. The walk runs
// on the raw float sum, so the day fraction is only good to float
// granularity near day boundaries.
func jdToCalSplit(jd1, jd2 float64) (year, month, day int, frac float64) {
	jd := jd1 + jd2
	if jd >= JDJan0Year0+1.0 {
		return jdToCalSplitNonNeg(jd)
	}
	return jdToCalSplitNeg(jd)
}

func jdToCalSplitNonNeg(jd float64) (year, month, day int, frac float64) {
	target := jd - (JDJan0Year0 + 1.0)
	numCycles := int(math.Floor(target / CycleDays))
	year = numCycles * CycleYears
	cursor := float64(numCycles) * CycleDays

	//whole completed years after the cycle boundary, moving forward
	cycleYear := year
	for i := 0; i < CycleYears; i++ {
		yl := float64(YearLen(cycleYear + i))
		if cursor+yl > target {
			break
		}
		cursor += yl
		year++
	}

	//months of the final year, January onward
	month = 1
	for i := 1; i <= 12; i++ {
		ml := float64(MonthLen(year, i))
		if cursor+ml > target {
			break
		}
		cursor += ml
		month++
	}

	days := target - cursor + 1.0 //+1 since the base is January 1 0h
	day = int(days)
	return year, month, day, days - float64(day)
}

func jdToCalSplitNeg(jd float64) (year, month, day int, frac float64) {
	target := jd - (JDJan0Year0 + 1.0)
	numCycles := int(math.Floor(target/CycleDays)) + 1
	year = numCycles*CycleYears - 1 //going backward through the calendar
	cursor := float64(numCycles) * CycleDays

	//whole completed years before the cycle boundary, moving backward
	cycleYear := year
	for i := 0; i < CycleYears; i++ {
		yl := float64(YearLen(cycleYear - i))
		if cursor-yl <= target {
			break
		}
		cursor -= yl
		year--
	}

	//months of the final year, December backward
	month = 12
	for i := 12; i >= 1; i-- {
		ml := float64(MonthLen(year, i))
		if cursor-ml <= target {
			break
		}
		cursor -= ml
		month--
	}

	//count backward from the end of the month: 32 + (-0.5) is December 31.5
	days := float64(MonthLen(year, month)) + 1.0 + target - cursor
	day = int(days)
	return year, month, day, days - float64(day)
}
