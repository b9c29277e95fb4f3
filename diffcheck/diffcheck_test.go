package diffcheck

import "testing"

func TestRun(t *testing.T) {
	res := Run()
	for _, f := range res.Failures {
		t.Error(f)
	}
	if res.Fail != 0 {
		t.Errorf("Want 0 failures, have %d", res.Fail)
	}
	if res.Pass == 0 {
		t.Error("Want a nonzero pass count")
	}
}

func TestRunYears(t *testing.T) {
	res := RunYears(-9, 12)
	for _, f := range res.Failures {
		t.Error(f)
	}
	if res.Fail != 0 {
		t.Errorf("Want 0 failures, have %d", res.Fail)
	}

	//22 years of which 6 are leap years, four checks per day because the
	//whole sweep sits inside the legacy range
	wantDays := 22*365 + 6
	if res.Pass != 4*wantDays {
		t.Errorf("Want %d passes, have %d", 4*wantDays, res.Pass)
	}
}

// Sweeps crossing a 400-year cycle boundary and the legacy year floor.
func TestRunYearsBoundaries(t *testing.T) {
	for _, r := range [][2]int{{395, 405}, {-405, -395}, {-4801, -4797}, {1999, 2001}} {
		res := RunYears(r[0], r[1])
		for _, f := range res.Failures {
			t.Error(f)
		}
		if res.Fail != 0 {
			t.Errorf("RunYears(%d, %d): want 0 failures, have %d", r[0], r[1], res.Fail)
		}
	}
}

func TestMerge(t *testing.T) {
	a := Result{Pass: 3, Fail: 1, Failures: []Failure{{Impl: "gregjd"}}}
	b := Result{Pass: 2, Fail: 2, Failures: []Failure{{Impl: "legacy"}, {Impl: "legacy"}}}
	a.Merge(b)
	if a.Pass != 5 || a.Fail != 3 || len(a.Failures) != 3 {
		t.Errorf("Want (5, 3, 3), have (%d, %d, %d)", a.Pass, a.Fail, len(a.Failures))
	}
}
