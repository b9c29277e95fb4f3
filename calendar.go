//package gregjd converts between dates in the proleptic Gregorian calendar
//and Julian Dates, in both directions, with no restriction on the year.
//The conversions count 400-year calendar cycles from a fixed anchor instead
//of evaluating the classic closed-form integer formulas, which keeps them
//exact over arbitrarily large positive and negative year ranges.
package gregjd

// The Gregorian calendar repeats exactly every 400 years.
const (
	// CycleYears is the length of the Gregorian repeat period in years.
	CycleYears = 400
	// CycleDays is the length of the Gregorian repeat period in days:
	// 400*365 plus 97 leap days (three of the four centennial years in a
	// cycle have none).
	CycleDays = 146097
	// JDJan0Year0 is the Julian Date of January 0.0 of year 0, the same
	// moment as December 31.0 of year -1. All cycle counting is offset
	// from this anchor.
	JDJan0Year0 = 1721058.5
	// JDMax is the designed ceiling for the reverse conversion.
	// There is no lower bound.
	JDMax = 1e9
)

const (
	normalYearLen = 365
	leapYearLen   = 366
)

//month lengths of a normal year, January first
var monthLenTable = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

//days preceding the first of each month in a normal year
//(Explanatory Supplement 1961, page 434)
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeap reports whether year y is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except centennial years, which are leap only
// when divisible by 400. Total over all years, negative years included.
func IsLeap(y int) bool {
	if y%100 == 0 {
		return y%400 == 0
	}
	return y%4 == 0
}

// YearLen returns the number of days in year y, 365 or 366.
func YearLen(y int) int {
	if IsLeap(y) {
		return leapYearLen
	}
	return normalYearLen
}

// MonthLen returns the length in days of month m (1..12) of year y.
// February gains a day in leap years.
func MonthLen(y, m int) int {
	if m == 2 && IsLeap(y) {
		return monthLenTable[1] + 1
	}
	return monthLenTable[m-1]
}

// leapYearsBefore returns the number of leap years in the half-open range
// [0, y) for y >= 0, and minus the number in [y, 0) for y < 0. It uses the
// truncating-division identity y/4 - y/100 + y/400 on the year preceding y,
// plus one when y > 0 because year 0 is itself a leap year.
func leapYearsBefore(y int) int {
	yp := y
	if y >= 0 {
		yp = y - 1
	}
	n := yp/4 - yp/100 + yp/400
	if y > 0 {
		n++
	}
	return n
}

// DaysInCompleteYears returns the total number of days in the half-open
// year range [startYear, endYear): the start year is included, the end year
// excluded, and the result is 0 when both are equal. startYear must not
// exceed endYear. The count is closed-form, so a range of millions of years
// costs the same as a range of two.
func DaysInCompleteYears(startYear, endYear int) int {
	leaps := leapYearsBefore(endYear) - leapYearsBefore(startYear)
	return (endYear-startYear)*normalYearLen + leaps
}
