//package legacy holds the restricted reference algorithms: the classic
//closed-form Gregorian calendar / Julian Date conversions, with the year
//floor and Julian Date range limits the closed forms require. It is fully
//independent of the main package and exists to be disagreed with: the
//differential tests run both implementations and compare.
package legacy

import (
	"fmt"
	"math"
)

const (
	// MinYear is the earliest year the closed-form conversion accepts (4800BC).
	MinYear = -4799
	// JDMin and JDMax bound the reverse conversion.
	JDMin = -68569.5
	JDMax = 1e9
	// DJM0 is the Julian Date of the Modified Julian Date epoch; CalToJD
	// returns its result as DJM0 plus an MJD remainder.
	DJM0 = 2400000.5
)

var (
	ErrYearBeforeFloor = fmt.Errorf("year before %d", MinYear) //Returned for years the closed form cannot handle
	ErrInvalidMonth    = fmt.Errorf("invalid month")           //Returned when the month is outside 1..12
	ErrInvalidDay      = fmt.Errorf("invalid day")             //Returned when the day is outside the month, the result is still computed
	ErrJDOutOfRange    = fmt.Errorf("JD out of range")         //Returned when jd1+jd2 falls outside [JDMin, JDMax]
)

//month lengths of a normal year
var monthLen = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

//difference between 1.0 and the next float64 (C's DBL_EPSILON)
const dblEpsilon = 2.220446049250313e-16

// CalToJD converts a Gregorian calendar date to a Julian Date with the
// classic closed-form integer formula. The result comes in the two-part
// form (DJM0, Modified Julian Date); the parts sum to the Julian Date of
// the date at 0h.
//
// Years before MinYear and months outside 1..12 return an error and no
// value. An ErrInvalidDay result is advisory: the value is still computed.
func CalToJD(year, month, day int) (djm0, djm float64, err error) {
	if year < MinYear {
		return 0, 0, ErrYearBeforeFloor
	}
	if month < 1 || month > 12 {
		return 0, 0, ErrInvalidMonth
	}

	//1 for February in a leap year, otherwise 0
	ly := 0
	if month == 2 && year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		ly = 1
	}
	if day < 1 || day > monthLen[month-1]+ly {
		err = ErrInvalidDay
	}

	my := (month - 14) / 12
	iypmy := year + my
	djm = float64(1461*(iypmy+4800)/4 +
		367*(month-2-12*my)/12 -
		3*((iypmy+4900)/100)/4 +
		day - 2432076)
	return DJM0, djm, err
}

// JDToCal converts a Julian Date, supplied in two parts whose sum is the
// value, to a Gregorian calendar date plus a day fraction in [0,1), with
// the classic closed-form integer formula. Values outside [JDMin, JDMax]
// return ErrJDOutOfRange and no result.
func JDToCal(dj1, dj2 float64) (year, month, day int, frac float64, err error) {
	dj := dj1 + dj2
	if dj < JDMin || dj > JDMax {
		return 0, 0, 0, 0, ErrJDOutOfRange
	}

	//separate day and fraction, where -0.5 <= fraction < 0.5
	d := math.Round(dj1)
	f1 := dj1 - d
	jd := int64(d)
	d = math.Round(dj2)
	f2 := dj2 - d
	jd += int64(d)

	//compute f1+f2+0.5 using compensated summation (Klein 2006)
	s := 0.5
	cs := 0.0
	for _, x := range [2]float64{f1, f2} {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			cs += (s - t) + x
		} else {
			cs += (x - t) + s
		}
		s = t
		if s >= 1.0 {
			jd++
			s -= 1.0
		}
	}
	f := s + cs
	cs = f - s

	//deal with negative f
	if f < 0.0 {
		f = s + 1.0
		cs += (1.0 - f) + s
		s = f
		f = s + cs
		cs = f - s
		jd--
	}

	//deal with f that is 1.0 or more when rounded to float64
	if f-1.0 >= -dblEpsilon/4.0 {
		t := s - 1.0
		cs += (s - t) - 1.0
		s = t
		f = s + cs
		if -dblEpsilon/2.0 < f {
			jd++
			if f < 0.0 {
				f = 0.0
			}
		}
	}

	//express the day in the Gregorian calendar
	l := jd + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l -= 1461*i/4 - 31
	k := 80 * l / 2447
	day = int(l - 2447*k/80)
	l = k / 11
	month = int(k + 2 - 12*l)
	year = int(100*(n-49) + i + l)
	return year, month, day, f, nil
}
