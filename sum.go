package gregjd

import "math"

//difference between 1.0 and the next float64 (C's DBL_EPSILON)
const dblEpsilon = 2.220446049250313e-16

// SplitDayFraction separates a two-part Julian Date into an integer Julian
// day number and the fraction of that calendar day elapsed since the
// preceding midnight, in [0,1).
//
// Each part is first rounded to its nearest integer, and the two residues
// are summed together with 0.5 using compensated summation (Klein 2006):
// the rounding error discarded by each addition is tracked in a correction
// term and folded back in. This keeps the low-order bits of the day
// fraction intact even when the parts are large values of nearly opposite
// magnitude, where a plain jd1+jd2 would erase them by cancellation.
func SplitDayFraction(jd1, jd2 float64) (jdn int64, frac float64) {
	d := math.Round(jd1)
	f1 := jd1 - d
	jdn = int64(d)
	d = math.Round(jd2)
	f2 := jd2 - d
	jdn += int64(d)

	//f1 + f2 + 0.5 with a running correction term
	s := 0.5
	cs := 0.0
	for _, x := range [2]float64{f1, f2} {
		s, cs = addCompensated(s, cs, x)
		if s >= 1.0 {
			jdn++
			s -= 1.0
		}
	}
	f := s + cs
	cs = f - s

	//a negative fraction belongs to the previous day
	if f < 0.0 {
		f = s + 1.0
		cs += (1.0 - f) + s
		s = f
		f = s + cs
		cs = f - s
		jdn--
	}

	//a fraction that rounds to 1.0 or more belongs to the next day
	if f-1.0 >= -dblEpsilon/4.0 {
		t := s - 1.0
		cs += (s - t) - 1.0
		s = t
		f = s + cs
		if -dblEpsilon/2.0 < f {
			jdn++
			f = math.Max(f, 0.0)
		}
	}
	return jdn, f
}

// addCompensated adds x to the running sum s, folding the rounding error
// the addition discards into the correction term cs (Klein 2006).
func addCompensated(s, cs, x float64) (float64, float64) {
	t := s + x
	if math.Abs(s) >= math.Abs(x) {
		cs += (s - t) + x
	} else {
		cs += (x - t) + s
	}
	return t, cs
}
