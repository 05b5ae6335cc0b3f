package precastro

import (
	"fmt"
	"strings"

	"github.com/soniakeys/meeus/v3/base"
)

// Object is a celestial object: a CatEntry plus the radian-based accessors
// and text conventions the rest of the package works in. The zero Object is
// usable; NewObject additionally pins the proper-motion epoch to J2000,
// which is what catalogs nearly always mean.
type Object struct {
	Entry CatEntry
}

func NewObject() *Object {
	return &Object{Entry: CatEntry{PromoEpoch: base.J2000}}
}

// RA returns the ICRS J2000 right ascension in radians.
func (o *Object) RA() float64 { return o.Entry.RA * hourToRad }

func (o *Object) SetRA(rad float64) { o.Entry.RA = rad / hourToRad }

// Dec returns the ICRS J2000 declination in radians.
func (o *Object) Dec() float64 { return o.Entry.Dec * degToRad }

func (o *Object) SetDec(rad float64) { o.Entry.Dec = rad / degToRad }

// SetRADec sets both coordinates from radians.
func (o *Object) SetRADec(raRad, decRad float64) *Object {
	o.SetRA(raRad)
	o.SetDec(decRad)
	return o
}

// ParseRADec sets both coordinates from sexagesimal text, RA in hours and
// declination in degrees.
func (o *Object) ParseRADec(raStr, decStr string) error {
	hours, err := ParseHours(raStr)
	if err != nil {
		return err
	}
	deg, err := ParseDegLat(decStr)
	if err != nil {
		return err
	}
	o.Entry.RA = hours
	o.Entry.Dec = deg
	return nil
}

// FormatRADec renders the coordinates in the catalog convention.
func (o *Object) FormatRADec() string {
	return FormatHours(o.Entry.RA, 3) + " " + FormatDegLat(o.Entry.Dec, 2)
}

// SetPromo sets both proper motion components in mas/yr.
func (o *Object) SetPromo(promoraMasYr, promodecMasYr float64) *Object {
	o.Entry.ProMoRA = promoraMasYr
	o.Entry.ProMoDec = promodecMasYr
	return o
}

// SetPromoEpoch sets the TDB JD at which the proper motion offset is zero.
func (o *Object) SetPromoEpoch(jdTDB float64) *Object {
	o.Entry.PromoEpoch = jdTDB
	return o
}

// SetPromoEpochCalendar sets the proper-motion epoch from a calendar date.
// Proper-motion epochs rarely need precision, so the timescale defaults to
// UTC and the TT conversion's ~leapsecond-level slop is accepted.
func (o *Object) SetPromoEpochCalendar(year, month, day int) error {
	t, err := TimeFromCalendar(year, month, day, 0, 0, 0, UTC)
	if err != nil {
		return err
	}
	tt, err := t.AsTT()
	if err != nil {
		return err
	}
	o.Entry.PromoEpoch = tt.JD()
	return nil
}

// Describe returns a multiline human-friendly summary of the entry.
func (o *Object) Describe() string {
	epoch := o.Entry.PromoEpoch
	if epoch == 0 {
		epoch = base.J2000
	}
	t := Time{jd1: epoch, Timescale: TDB}
	var b strings.Builder
	fmt.Fprintf(&b, "ICRS J2000: %s\n", o.FormatRADec())
	fmt.Fprintf(&b, "Proper motion: %+.2f %+.2f mas/yr\n", o.Entry.ProMoRA, o.Entry.ProMoDec)
	fmt.Fprintf(&b, "Parallax: %.2f mas\n", o.Entry.Parallax)
	fmt.Fprintf(&b, "Radial velocity: %+.2f km/s\n", o.Entry.RadialVelocity)
	fmt.Fprintf(&b, "Proper-motion epoch: %s [TDB]", t.FormatCalendar(0))
	return b.String()
}

// AstroPos computes the object's astrometric place at the TT Julian date,
// returning radians. Reduced trades accuracy for speed when the reduction
// routine supports it.
func (o *Object) AstroPos(r Reducer, jdTT float64, acc Accuracy) (raRad, decRad float64, err error) {
	raHours, decDeg, code := r.AstroStar(jdTT, o.Entry, acc)
	if code != 0 {
		return 0, 0, &NovasError{Code: code}
	}
	return raHours * hourToRad, decDeg * degToRad, nil
}

// AstroPosTime is AstroPos for a Time value, converting it to TT first.
func (o *Object) AstroPosTime(r Reducer, t Time, acc Accuracy) (raRad, decRad float64, err error) {
	tt, err := t.AsTT()
	if err != nil {
		return 0, 0, err
	}
	return o.AstroPos(r, tt.JD(), acc)
}
