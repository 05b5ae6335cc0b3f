package precastro

import (
	"fmt"
	"sync"

	"github.com/soniakeys/meeus/v3/julian"
)

// TAI-UTC steps since the start of the whole-second leapsecond era. Dates
// are the UTC day the new offset took effect.
var leapSteps = []struct {
	year, month int
	dat         float64
}{
	{1972, 1, 10}, {1972, 7, 11}, {1973, 1, 12}, {1974, 1, 13},
	{1975, 1, 14}, {1976, 1, 15}, {1977, 1, 16}, {1978, 1, 17},
	{1979, 1, 18}, {1980, 1, 19}, {1981, 7, 20}, {1982, 7, 21},
	{1983, 7, 22}, {1985, 7, 23}, {1988, 1, 24}, {1990, 1, 25},
	{1991, 1, 26}, {1992, 7, 27}, {1993, 7, 28}, {1994, 7, 29},
	{1996, 1, 30}, {1997, 7, 31}, {1999, 1, 32}, {2006, 1, 33},
	{2009, 1, 34}, {2012, 7, 35}, {2015, 7, 36}, {2017, 1, 37},
}

var leapJDs struct {
	once sync.Once
	jd   []float64
}

// taiMinusUTC returns TAI-UTC in seconds for the given UTC Julian Date.
// Dates before 1972, when UTC ran on a rubber-second drift model, are not
// supported.
func taiMinusUTC(jdUTC float64) (float64, error) {
	leapJDs.once.Do(func() {
		leapJDs.jd = make([]float64, len(leapSteps))
		for i, step := range leapSteps {
			leapJDs.jd[i] = julian.CalendarGregorianToJD(step.year, step.month, 1)
		}
	})
	if jdUTC < leapJDs.jd[0] {
		return 0, fmt.Errorf("UTC not supported before 1972 (JD %.1f)", jdUTC)
	}
	dat := leapSteps[0].dat
	for i, jd := range leapJDs.jd {
		if jdUTC >= jd {
			dat = leapSteps[i].dat
		}
	}
	return dat, nil
}
