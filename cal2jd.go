package gregjd

import "fmt"

var (
	ErrInvalidMonth = fmt.Errorf("invalid month")   //Returned when the month is outside 1..12, no Julian Date is computed
	ErrInvalidDay   = fmt.Errorf("invalid day")     //Returned when the day is outside the month, the Julian Date is still computed
	ErrOutOfRange   = fmt.Errorf("JD out of range") //Returned when jd1+jd2 exceeds JDMax on the reverse conversion
)

// Validate range-checks a calendar date: the month against 1..12 and the day
// against the length of that month in that year (February 29 is valid in
// leap years). ErrInvalidMonth takes precedence over ErrInvalidDay.
func Validate(year, month, day int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if day < 1 || day > MonthLen(year, month) {
		return ErrInvalidDay
	}
	return nil
}

// CalToJD converts a proleptic Gregorian calendar date to a Julian Date.
// The result is returned in two parts whose sum is the Julian Date of the
// date at 0h: the first part carries the whole value and the second is
// always zero, so callers may recombine or re-split them as they wish.
//
// There is no restriction on the year. An ErrInvalidDay result is advisory:
// the Julian Date is still computed from the out-of-range input and returned
// alongside the error, so check the error before trusting the value. On
// ErrInvalidMonth no value is computed and both parts are zero.
func CalToJD(year, month, day int) (jd1, jd2 float64, err error) {
	err = Validate(year, month, day)
	if err == ErrInvalidMonth {
		return 0, 0, err
	}
	if year >= 0 {
		return calToJDNonNeg(year, month, day), 0, err
	}
	return calToJDNeg(year, month, day), 0, err
}

// calToJDNonNeg handles years >= 0: whole 400-year cycles first, then the
// whole years since the last cycle boundary, then the completed months of
// the final year, then the day itself.
func calToJDNonNeg(y, m, d int) float64 {
	numCycles := y / CycleYears
	cycleBase := numCycles * CycleYears
	days := numCycles*CycleDays +
		DaysInCompleteYears(cycleBase, y) +
		daysFromJan0(y, m, d)
	return JDJan0Year0 + float64(days)
}

// calToJDNeg handles years < 0. Cycle counting runs backward through the
// calendar here, so year+1 is the base that aligns to the same 400-year
// boundaries, and the accumulated day count is subtracted from the anchor.
// The +1 overhang is because January 0.0 of year 0 already encroaches one
// day into the negative years.
func calToJDNeg(y, m, d int) float64 {
	yBiased := y + 1
	numCycles := yBiased / CycleYears //<= 0
	days := -numCycles*CycleDays +
		DaysInCompleteYears(yBiased, numCycles*CycleYears) +
		daysFromDec32(y, m, d)
	return JDJan0Year0 + 1 - float64(days)
}

// daysFromJan0 returns the number of days from January 0.0 of year y to the
// given date at 0h: the completed months from the offset table, one more
// past February in a leap year, plus the day of the month.
func daysFromJan0(y, m, d int) int {
	days := daysBeforeMonth[m-1] + d
	if m > 2 && IsLeap(y) {
		days++
	}
	return days
}

// daysFromDec32 returns the number of days from the given date at 0h
// forward to December 32.0 of year y, which is the same moment as
// January 0.0 of year y+1.
func daysFromDec32(y, m, d int) int {
	return YearLen(y) + 1 - daysFromJan0(y, m, d)
}
