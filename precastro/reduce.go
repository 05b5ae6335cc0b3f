package precastro

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
)

// Status codes produced by the default reducer. Zero is success. Ephemeris
// problems are reported offset by ten, following the NOVAS convention of
// nesting subsystem codes.
const (
	CodeInvalidAccuracy = 1
	CodeIndeterminateRA = 2
	CodeNoEphemeris     = 11
	CodeEphemerisRange  = 12
	CodeEphemerisTarget = 13
	CodeEphemerisRead   = 14
)

const (
	asecToRad = math.Pi / (180 * 3600)
	degToRad  = math.Pi / 180
	hourToRad = 15 * math.Pi / 180
	auKM      = 1.495978707e8
	cAUDay    = 173.1446326846693 // speed of light, AU/day
)

// EarthSource supplies the Earth's barycentric position in AU for the
// parallax term of the reduction.
type EarthSource interface {
	EarthPosition(jdTDB float64) (x, y, z float64, code int)
}

// NovasReducer computes the astrometric place of a star: proper motion,
// radial velocity, and annual parallax applied for a geocentric observer,
// referred to the mean equator and equinox of J2000. Aberration, light
// bending, and refraction are deliberately absent; they belong to the
// virtual and apparent places.
type NovasReducer struct {
	earth EarthSource
}

// NewNovasReducer builds the default reduction routine. A nil EarthSource is
// accepted; stars with nonzero parallax then fail with CodeNoEphemeris.
func NewNovasReducer(earth EarthSource) *NovasReducer {
	return &NovasReducer{earth: earth}
}

// AstroStar reduces a catalog entry to its astrometric place at jdTT.
// Outputs follow the NOVAS convention: right ascension in hours, declination
// in degrees. The TT date is used directly as the TDB ephemeris argument;
// the difference is under 2 ms and negligible at this accuracy.
func (r *NovasReducer) AstroStar(jdTT float64, star CatEntry, acc Accuracy) (float64, float64, int) {
	if acc != Full && acc != Reduced {
		return 0, 0, CodeInvalidAccuracy
	}

	// Catalog unit vector scaled to the parallax distance. A floor keeps
	// zero-parallax stars effectively at infinity.
	paralx := star.Parallax
	if paralx <= 0 {
		paralx = 1e-6
	}
	dist := 1 / math.Sin(paralx*1e-3*asecToRad)

	ra := star.RA * hourToRad
	dec := star.Dec * degToRad
	cra, sra := math.Cos(ra), math.Sin(ra)
	cdc, sdc := math.Cos(dec), math.Sin(dec)

	pos := [3]float64{
		dist * cdc * cra,
		dist * cdc * sra,
		dist * sdc,
	}

	// Space motion in AU/day.
	pmr := star.ProMoRA / (paralx * 365.25)
	pmd := star.ProMoDec / (paralx * 365.25)
	rvl := star.RadialVelocity * 86400 / auKM
	vel := [3]float64{
		-pmr*sra - pmd*sdc*cra + rvl*cdc*cra,
		pmr*cra - pmd*sdc*sra + rvl*cdc*sra,
		pmd*cdc + rvl*sdc,
	}

	epoch := star.PromoEpoch
	if epoch == 0 {
		epoch = base.J2000
	}
	dt := jdTT - epoch
	for i := range pos {
		pos[i] += vel[i] * dt
	}

	// Shift from the barycenter to the geocenter. Without an ephemeris the
	// shift is only meaningful for stars with measured parallax.
	if r.earth != nil {
		ex, ey, ez, code := r.earth.EarthPosition(jdTT)
		if code != 0 {
			return 0, 0, code
		}
		pos[0] -= ex
		pos[1] -= ey
		pos[2] -= ez
	} else if star.Parallax > 0 {
		return 0, 0, CodeNoEphemeris
	}

	return vectorToRADec(pos)
}

// vectorToRADec converts an equatorial position vector to spherical
// coordinates, RA in hours and declination in degrees.
func vectorToRADec(pos [3]float64) (float64, float64, int) {
	xyproj := math.Hypot(pos[0], pos[1])
	if xyproj == 0 {
		if pos[2] == 0 {
			return 0, 0, CodeIndeterminateRA
		}
		// On the polar axis RA is conventionally zero.
		if pos[2] > 0 {
			return 0, 90, 0
		}
		return 0, -90, 0
	}
	raHours := math.Atan2(pos[1], pos[0]) / hourToRad
	if raHours < 0 {
		raHours += 24
	}
	decDeg := math.Atan2(pos[2], xyproj) / degToRad
	return raHours, decDeg, 0
}
