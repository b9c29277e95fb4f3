package diffcheck

// Case is one published conversion fixed point: a calendar date with a day
// fraction, and the Julian Date they correspond to.
type Case struct {
	Source string
	Year   int
	Month  int
	Day    int
	Frac   float64
	JD     float64
}

// Cases returns the fixed points collected from the astronomical
// literature. Every case is checked in both directions against both
// implementations (the legacy one only inside its restricted range).
func Cases() []Case {
	const (
		sofa      = "SOFA t_sofa_c.c"
		expl      = "Explanatory Supplement 1961, page 437"
		guide     = "Guide de Donnees Astronomiques 2017, page 8"
		vondrak   = "Vondrak, Wallace, Capitaine 2011"
		handbook  = "Observer's Handbook, RASC, 2024, page 47"
		meeus     = "Astronomical Algorithms, Meeus 1991, page 61ff"
		harvard   = "legacy-www.math.harvard.edu Calendar tool"
		jdOrigin  = "origin of the Julian date scale"
		sofaFloor = "first date supported by the closed form"
	)
	return []Case{
		{sofa, 2003, 6, 1, 0.0, 2452791.5},
		{sofa, 1996, 2, 11, 0.0, 2450124.5},

		{expl, 1500, 1, 1, 0.0, 2268923.5},
		{expl, 1600, 1, 1, 0.0, 2305447.5},
		{expl, 1700, 1, 1, 0.0, 2341972.5},
		{expl, 1800, 1, 1, 0.0, 2378496.5},
		{expl, 1900, 1, 1, 0.0, 2415020.5},
		{expl, 1500, 3, 1, 0.0, 2268923.5 + 59},
		{expl, 1600, 3, 1, 0.0, 2305447.5 + 60}, //only 1600 of these centuries is a leap year
		{expl, 1700, 3, 1, 0.0, 2341972.5 + 59},
		{expl, 1800, 3, 1, 0.0, 2378496.5 + 59},
		{expl, 1900, 3, 1, 0.0, 2415020.5 + 59},

		{guide, 1950, 1, 1, 0.5, 2433283.0},
		{guide, 2000, 1, 1, 0.5, 2451545.0},
		{guide, 2050, 1, 1, 0.5, 2469808.0},
		{guide, 2090, 1, 1, 0.5, 2484418.0},

		//-1374 May 3, at 13:52:19.2 TT
		{vondrak, -1374, 5, 3, 0.578, 1219339.078},

		{handbook, 2024, 1, 1, 0.0, 2460310.5},
		{handbook, 2024, 3, 1, 0.0, 2460370.5},

		{meeus, 1957, 10, 4, 0.81, 2436116.31},
		{meeus, 1987, 6, 19, 0.5, 2446966.0},

		{harvard, -8, 1, 1, 0.5, 1718138.0},
		{harvard, -101, 1, 1, 0.5, 1684171.0},
		{harvard, -799, 1, 1, 0.5, 1429232.0},
		{harvard, -800, 1, 1, 0.5, 1428866.0},
		{harvard, -801, 1, 1, 0.5, 1428501.0},
		{harvard, 99, 12, 31, 0.5, 1757584.0},
		{harvard, 100, 1, 1, 0.5, 1757585.0},
		{harvard, 100, 1, 31, 0.5, 1757615.0},
		{harvard, 100, 2, 1, 0.5, 1757616.0},
		{harvard, 100, 2, 28, 0.5, 1757643.0}, //100 is not a leap year
		{harvard, 100, 3, 1, 0.5, 1757644.0},
		{harvard, 101, 1, 1, 0.5, 1757950.0},
		{harvard, 200, 1, 1, 0.5, 1794109.0},
		{harvard, 300, 1, 1, 0.5, 1830633.0},
		{harvard, 400, 1, 1, 0.5, 1867157.0},
		{harvard, 700, 1, 1, 0.5, 1976730.0},
		{harvard, 800, 1, 1, 0.5, 2013254.0},
		{harvard, 3000, 1, 1, 0.5, 2816788.0},
		{harvard, 30000, 1, 1, 0.5, 12678335.0},

		//-4712-01-01 12h in the Julian calendar, -4713-11-24 in the Gregorian
		{jdOrigin, -4713, 11, 24, 0.5, 0.0},

		{sofaFloor, -4799, 1, 1, 0.0, -31738.5},
	}
}
