//package diffcheck runs both conversion implementations, the unrestricted
//one and the restricted legacy one, over the published fixed points and
//reports where they disagree. Runners return a Result value for the caller
//to aggregate; nothing is tallied in shared state.
package diffcheck

import (
	"fmt"
	"math"

	gregjd "github.com/jhkoning/go-gregorian-jd"
	"github.com/jhkoning/go-gregorian-jd/legacy"
)

//fraction tolerance for the reverse direction (float32 epsilon, as the
//published fractions carry no more precision than that)
const fracTolerance = 1.1920929e-7

// Failure records one disagreement between an implementation and a case.
type Failure struct {
	Impl string //"gregjd" or "legacy"
	Dir  string //"cal2jd" or "jd2cal"
	Case Case
	Want string
	Got  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s %s %d-%02d-%02d/%g: want %s, have %s (%s)",
		f.Impl, f.Dir, f.Case.Year, f.Case.Month, f.Case.Day, f.Case.JD, f.Want, f.Got, f.Case.Source)
}

// Result tallies one differential run.
type Result struct {
	Pass     int
	Fail     int
	Failures []Failure
}

// Merge folds another run into this one.
func (r *Result) Merge(other Result) {
	r.Pass += other.Pass
	r.Fail += other.Fail
	r.Failures = append(r.Failures, other.Failures...)
}

func (r *Result) record(ok bool, f Failure) {
	if ok {
		r.Pass++
		return
	}
	r.Fail++
	r.Failures = append(r.Failures, f)
}

// check runs one case in both directions against both implementations.
// The legacy implementation is only consulted inside its restricted range.
func (r *Result) check(c Case) {
	jd1, jd2, err := gregjd.CalToJD(c.Year, c.Month, c.Day)
	got := jd1 + jd2 + c.Frac
	r.record(err == nil && got == c.JD, Failure{
		Impl: "gregjd", Dir: "cal2jd", Case: c,
		Want: fmt.Sprintf("%f", c.JD),
		Got:  fmt.Sprintf("%f err=%v", got, err),
	})

	y, m, d, fd, err := gregjd.JDToCal(c.JD, 0)
	ok := err == nil && y == c.Year && m == c.Month && d == c.Day &&
		math.Abs(fd-c.Frac) < fracTolerance
	r.record(ok, Failure{
		Impl: "gregjd", Dir: "jd2cal", Case: c,
		Want: fmt.Sprintf("%d-%02d-%02d %f", c.Year, c.Month, c.Day, c.Frac),
		Got:  fmt.Sprintf("%d-%02d-%02d %f err=%v", y, m, d, fd, err),
	})

	if c.Year >= legacy.MinYear {
		djm0, djm, err := legacy.CalToJD(c.Year, c.Month, c.Day)
		got := djm0 + djm + c.Frac
		r.record(err == nil && got == c.JD, Failure{
			Impl: "legacy", Dir: "cal2jd", Case: c,
			Want: fmt.Sprintf("%f", c.JD),
			Got:  fmt.Sprintf("%f err=%v", got, err),
		})
	}

	if c.JD >= legacy.JDMin && c.JD <= legacy.JDMax {
		y, m, d, fd, err := legacy.JDToCal(c.JD, 0)
		ok := err == nil && y == c.Year && m == c.Month && d == c.Day &&
			math.Abs(fd-c.Frac) < fracTolerance
		r.record(ok, Failure{
			Impl: "legacy", Dir: "jd2cal", Case: c,
			Want: fmt.Sprintf("%d-%02d-%02d %f", c.Year, c.Month, c.Day, c.Frac),
			Got:  fmt.Sprintf("%d-%02d-%02d %f err=%v", y, m, d, fd, err),
		})
	}
}

// Run checks every published fixed point in both directions.
func Run() Result {
	var res Result
	for _, c := range Cases() {
		res.check(c)
	}
	return res
}

// RunYears checks every day of every year in [from, to], inclusive. The
// first day anchors the sweep; from there every following day must convert
// to exactly the previous Julian Date plus one, invert back to the same
// date, and agree with the legacy implementation inside its range. Absolute
// anchor correctness is covered by the fixed points in Run.
func RunYears(from, to int) Result {
	var res Result
	jd1, jd2, err := gregjd.CalToJD(from, 1, 1)
	if err != nil {
		res.record(false, Failure{
			Impl: "gregjd", Dir: "cal2jd",
			Case: Case{Source: "year sweep", Year: from, Month: 1, Day: 1},
			Want: "a computed Julian Date",
			Got:  err.Error(),
		})
		return res
	}
	jd := jd1 + jd2 - 1 //December 31.0 of the year before the sweep
	for y := from; y <= to; y++ {
		for m := 1; m <= 12; m++ {
			for d := 1; d <= gregjd.MonthLen(y, m); d++ {
				jd++
				res.check(Case{Source: "year sweep", Year: y, Month: m, Day: d, JD: jd})
			}
		}
	}
	return res
}
