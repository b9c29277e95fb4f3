package gregjd

//Julian day number of January 1 of year 0 (the calendar day that starts at
//JDJan0Year0 + 1.0)
const jdnJan1Year0 = 1721060

// JDToCal converts a Julian Date, supplied in two parts whose sum is the
// value, to a proleptic Gregorian calendar date plus a day fraction in
// [0,1). The value may be divided between jd1 and jd2 in any way the caller
// likes, including putting all of it in either part; the result depends
// only on the sum.
//
// Julian Dates above JDMax return ErrOutOfRange and no computed result.
// There is no lower bound.
func JDToCal(jd1, jd2 float64) (year, month, day int, frac float64, err error) {
	if jd1+jd2 > JDMax {
		return 0, 0, 0, 0, ErrOutOfRange
	}

	//Normalize to an integer day number and a compensated day fraction,
	//then walk the calendar in exact integer arithmetic. The fraction
	//passes through untouched, so re-splitting the input cannot move a
	//result across a day boundary.
	jdn, f := SplitDayFraction(jd1, jd2)

	//day index relative to January 1 of year 0, floor division so that
	//negative indexes land on the cycle that precedes them
	idx := jdn - jdnJan1Year0
	numCycles := floorDiv(idx, CycleDays)
	year = int(numCycles) * CycleYears
	rem := int(idx - numCycles*CycleDays) //0..CycleDays-1

	//Coarse estimate of the whole years inside the cycle. It never
	//overshoots, and it leaves the refinement loop below at most two
	//iterations of work.
	if more := rem/leapYearLen - 1; more > 0 {
		rem -= DaysInCompleteYears(year, year+more)
		year += more
	}
	for i := 0; i < CycleYears; i++ {
		yl := YearLen(year)
		if rem < yl {
			break
		}
		rem -= yl
		year++
	}

	for month = 1; month < 12; month++ {
		ml := MonthLen(year, month)
		if rem < ml {
			break
		}
		rem -= ml
	}
	return year, month, rem + 1, f, nil
}

// floorDiv divides a by b rounding toward negative infinity.
// b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
