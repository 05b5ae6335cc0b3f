package precastro

import (
	"fmt"
	"math"
	stdtime "time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// Timescale names accepted by Time. Only a subset has conversion support;
// the rest are carried as labels, matching the original wrapper.
const (
	TAI = "TAI"
	UTC = "UTC"
	UT1 = "UT1"
	TT  = "TT"
	TCG = "TCG"
	TCB = "TCB"
	TDB = "TDB"
)

var okTimescales = map[string]bool{
	TAI: true, UTC: true, UT1: true, TT: true, TCG: true, TCB: true, TDB: true,
}

const ttMinusTAI = 32.184 // seconds

func checkTimescale(timescale string) error {
	if !okTimescales[timescale] {
		return fmt.Errorf("illegal timescale name %q", timescale)
	}
	return nil
}

// Time is a precisely-measured time: a two-part Julian Date plus the named
// timescale it is measured in. The two-part representation preserves
// precision that a single float Julian Date loses.
type Time struct {
	jd1, jd2  float64
	Timescale string
}

func TimeFromJD(jd float64, timescale string) (Time, error) {
	if err := checkTimescale(timescale); err != nil {
		return Time{}, err
	}
	return Time{jd1: jd, jd2: 0, Timescale: timescale}, nil
}

func TimeFromMJD(mjd float64, timescale string) (Time, error) {
	if err := checkTimescale(timescale); err != nil {
		return Time{}, err
	}
	return Time{jd1: 2400000.5, jd2: mjd, Timescale: timescale}, nil
}

// TimeFromCalendar builds a Time from a proleptic Gregorian calendar date.
func TimeFromCalendar(year, month, day, hour, minute int, second float64, timescale string) (Time, error) {
	if err := checkTimescale(timescale); err != nil {
		return Time{}, err
	}
	if month < 1 || month > 12 {
		return Time{}, fmt.Errorf("calendar month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return Time{}, fmt.Errorf("calendar day %d out of range", day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("calendar time %02d:%02d out of range", hour, minute)
	}
	if second < 0 || second >= 61 {
		return Time{}, fmt.Errorf("calendar second %g out of range", second)
	}
	jd1 := julian.CalendarGregorianToJD(year, month, float64(day))
	jd2 := (float64(hour)*3600 + float64(minute)*60 + second) / 86400
	return Time{jd1: jd1, jd2: jd2, Timescale: timescale}, nil
}

// TimeFromPOSIX interprets a POSIX timestamp as UTC. The leapsecond
// ambiguity inherent in POSIX time is unavoidable here; on leapsecond days
// the result is good to about a second.
func TimeFromPOSIX(posix float64) Time {
	return Time{jd1: 2440587.5, jd2: posix / 86400, Timescale: UTC}
}

// Now reads the system clock.
func Now() Time {
	return TimeFromPOSIX(float64(stdtime.Now().UnixNano()) / 1e9)
}

// TimeFromJulianEpoch builds a TT time from a Julian epoch such as 2005.37.
func TimeFromJulianEpoch(epoch float64) Time {
	return Time{jd1: base.J2000, jd2: (epoch - 2000) * base.JulianYear, Timescale: TT}
}

// JD collapses the time to a single Julian Date, limiting precision to
// roughly 20 microseconds.
func (t Time) JD() float64 { return t.jd1 + t.jd2 }

func (t Time) MJD() float64 { return (t.jd1 - 2400000.5) + t.jd2 }

// AsTT converts to the TT timescale. TAI and UTC sources are supported; UTC
// goes through the embedded leapsecond table.
func (t Time) AsTT() (Time, error) {
	switch t.Timescale {
	case TT:
		return Time{jd1: t.jd1, jd2: t.jd2, Timescale: TT}, nil
	case TAI:
		return Time{jd1: t.jd1, jd2: t.jd2 + ttMinusTAI/86400, Timescale: TT}, nil
	case UTC:
		dat, err := taiMinusUTC(t.JD())
		if err != nil {
			return Time{}, err
		}
		return Time{jd1: t.jd1, jd2: t.jd2 + (dat+ttMinusTAI)/86400, Timescale: TT}, nil
	default:
		return Time{}, &UnsupportedTimescaleError{Timescale: t.Timescale}
	}
}

// AsTDB converts to the TDB timescale. The only implemented path besides a
// TDB copy is accepting TT as a ~2 ms approximation when ttOK is set.
func (t Time) AsTDB(ttOK bool) (Time, error) {
	if t.Timescale == TDB {
		return Time{jd1: t.jd1, jd2: t.jd2, Timescale: TDB}, nil
	}
	if !ttOK {
		return Time{}, &UnsupportedTimescaleError{Timescale: t.Timescale}
	}
	return t.AsTT()
}

// AsBJD adjusts the time to the solar system barycenter, correcting for
// light travel time toward obj. The result keeps the timescale AsTDB
// produced (TT or TDB). Accuracy is about 0.1 s: the observer sits at the
// geocenter rather than an observatory site, and the TT-to-TDB conversion
// is the ~2 ms approximation gated by ttOK.
func (t Time) AsBJD(obj *Object, earth EarthSource, ttOK bool) (Time, error) {
	tdb, err := t.AsTDB(ttOK)
	if err != nil {
		return Time{}, err
	}

	ra := obj.RA()
	dec := obj.Dec()
	xhat := math.Cos(dec) * math.Cos(ra)
	yhat := math.Cos(dec) * math.Sin(ra)
	zhat := math.Sin(dec)

	xobs, yobs, zobs, code := earth.EarthPosition(tdb.JD())
	if code != 0 {
		return Time{}, &NovasError{Code: code}
	}

	tdb.jd2 += (xobs*xhat + yobs*yhat + zobs*zhat) / cAUDay
	return tdb, nil
}

// Calendar breaks the time down to Gregorian calendar form, returning the
// fraction of the day separately.
func (t Time) Calendar() (year, month, day int, frac float64) {
	y, m, d := julian.JDToCalendar(t.JD())
	day = int(d)
	return y, m, day, d - float64(day)
}

// FormatCalendar renders the time as "YYYY/MM/DD HH:MM:SS.SSS" with the
// given number of decimal places on the seconds. Precision below one drops
// the decimal point; negative precision rounds to coarser-than-second steps
// while the trailing digits stay in the string.
func (t Time) FormatCalendar(precision int) string {
	scale := 1.0
	stepSec := 1.0
	switch {
	case precision > 0:
		scale = math.Pow(10, float64(precision))
		stepSec = 1 / scale
	case precision < 0:
		stepSec = math.Pow(10, float64(-precision))
	}

	year, month, day, frac := t.Calendar()
	// Round at the requested precision before splitting the day, so a time
	// just under midnight does not print a second of 60.
	ticks := math.Round(frac*86400/stepSec) * (stepSec * scale)
	if ticks >= 86400*scale {
		shifted := Time{jd1: t.jd1, jd2: t.jd2 + stepSec/(2*86400), Timescale: t.Timescale}
		year, month, day, _ = shifted.Calendar()
		ticks = 0
	}

	whole := int(ticks / scale)
	hour := whole / 3600
	minute := whole / 60 % 60
	second := whole % 60
	if precision < 1 {
		return fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d", year, month, day, hour, minute, second)
	}
	fracPart := int(ticks) - whole*int(scale)
	return fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d.%0*d", year, month, day, hour, minute, second, precision, fracPart)
}
