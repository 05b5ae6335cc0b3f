package precastro

import "context"

// CatEntry is the fixed catalog record consumed by the reduction routine,
// mirroring the NOVAS cat_entry layout and units.
type CatEntry struct {
	RA             float64 // ICRS right ascension, hours
	Dec            float64 // ICRS declination, degrees
	ProMoRA        float64 // proper motion in RA, mas/yr (cos(dec) factor included)
	ProMoDec       float64 // proper motion in declination, mas/yr
	Parallax       float64 // annual parallax, mas
	RadialVelocity float64 // radial velocity, km/s
	PromoEpoch     float64 // TDB JD at which proper motion is zero; 0 means J2000
}

// Accuracy selects the reduction mode. The exposed builtin always passes
// Full; there is no caller-visible way to change it.
type Accuracy int

const (
	Full Accuracy = iota
	Reduced
)

// Reducer is the external reduction routine's calling convention: apparent
// outputs plus a status code where zero is success and any nonzero value is
// a library-defined failure.
type Reducer interface {
	AstroStar(jdTT float64, star CatEntry, acc Accuracy) (raHours, decDeg float64, code int)
}

// Option configures module construction.
type Option func(*moduleConfig)

type moduleConfig struct {
	reducer Reducer
	ephem   *Ephemeris
}

// WithReducer substitutes the reduction routine. Intended for tests and for
// callers that bring their own NOVAS-compatible implementation.
func WithReducer(r Reducer) Option {
	return func(cfg *moduleConfig) { cfg.reducer = r }
}

// WithEphemeris supplies a JPL binary ephemeris. It backs the parallax term
// of the default reducer and the novas_ephemeris builtin.
func WithEphemeris(e *Ephemeris) Option {
	return func(cfg *moduleConfig) { cfg.ephem = e }
}

// New builds the precastro module: the shared error kind is attached under
// the NovasError attribute and the callable surface is registered from a
// declarative table, once, for the life of the module.
func New(opts ...Option) (*Module, error) {
	var cfg moduleConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reducer == nil {
		var earth EarthSource
		if cfg.ephem != nil {
			earth = cfg.ephem
		}
		cfg.reducer = NewNovasReducer(earth)
	}

	specs := []BuiltinSpec{
		{
			Name: "novas_astro_star",
			Sig:  "ddddddd",
			Doc:  "(jdtt, ra, dec, promora, promodec, parallax, rv) => (ra, dec)",
			Fn:   astroStarBuiltin(cfg.reducer),
		},
		{
			Name: "novas_ephemeris",
			Sig:  "dii",
			Doc:  "(jdtdb, target, center) => (x, y, z, vx, vy, vz)",
			Fn:   ephemerisBuiltin(cfg.ephem),
		},
	}

	m, err := newModule("precastro", specs)
	if err != nil {
		return nil, err
	}
	m.attachErrorKind("NovasError", ErrNovas)
	return m, nil
}

func astroStarBuiltin(r Reducer) BuiltinFunc {
	return func(ctx context.Context, args []Value) (Value, error) {
		star := CatEntry{
			RA:             args[1].Float(),
			Dec:            args[2].Float(),
			ProMoRA:        args[3].Float(),
			ProMoDec:       args[4].Float(),
			Parallax:       args[5].Float(),
			RadialVelocity: args[6].Float(),
		}
		ra, dec, code := r.AstroStar(args[0].Float(), star, Full)
		if code != 0 {
			return NewNil(), &NovasError{Code: code}
		}
		return NewTuple(ra, dec), nil
	}
}

func ephemerisBuiltin(e *Ephemeris) BuiltinFunc {
	return func(ctx context.Context, args []Value) (Value, error) {
		if e == nil {
			return NewNil(), &NovasError{Code: CodeNoEphemeris}
		}
		pv, code := e.PV(args[0].Float(), int(args[1].Int()), int(args[2].Int()))
		if code != 0 {
			return NewNil(), &NovasError{Code: code}
		}
		return NewTuple(pv[:]...), nil
	}
}
