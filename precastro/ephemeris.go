package precastro

import (
	"errors"
	"fmt"

	"github.com/mshafiee/jpleph"
)

// Ephemeris adapts a JPL binary ephemeris to the status-code contract the
// reducer and the novas_ephemeris builtin expect. Target and center numbers
// follow the JPL convention carried by the jpleph package (3 = Earth,
// 11 = Sun, 12 = solar system barycenter, ...).
type Ephemeris struct {
	eph *jpleph.Ephemeris
}

// OpenEphemeris opens a binary ephemeris file such as a compiled DE405 or
// DE421 table.
func OpenEphemeris(path string) (*Ephemeris, error) {
	eph, err := jpleph.NewEphemeris(path, false)
	if err != nil {
		return nil, fmt.Errorf("open ephemeris %s: %w", path, err)
	}
	return &Ephemeris{eph: eph}, nil
}

func (e *Ephemeris) Close() error {
	return e.eph.Close()
}

// PV looks up the barycentric position (AU) and velocity (AU/day) of target
// with respect to center at the TDB Julian date.
func (e *Ephemeris) PV(jdTDB float64, target, center int) ([6]float64, int) {
	pos, vel, err := e.eph.CalculatePV(jdTDB, jpleph.Planet(target), jpleph.CenterBody(center), true)
	if err != nil {
		return [6]float64{}, ephemerisCode(err)
	}
	return [6]float64{pos.X, pos.Y, pos.Z, vel.DX, vel.DY, vel.DZ}, 0
}

// EarthPosition implements EarthSource with the Earth's position relative to
// the solar system barycenter.
func (e *Ephemeris) EarthPosition(jdTDB float64) (float64, float64, float64, int) {
	pos, _, err := e.eph.CalculatePV(jdTDB, jpleph.Earth, jpleph.CenterSolarSystemBarycenter, false)
	if err != nil {
		return 0, 0, 0, ephemerisCode(err)
	}
	return pos.X, pos.Y, pos.Z, 0
}

func ephemerisCode(err error) int {
	switch {
	case errors.Is(err, jpleph.ErrOutsideRange):
		return CodeEphemerisRange
	case errors.Is(err, jpleph.ErrInvalidIndex), errors.Is(err, jpleph.ErrQuantityNotInEphemeris):
		return CodeEphemerisTarget
	default:
		return CodeEphemerisRead
	}
}
