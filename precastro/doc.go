// Package precastro exposes NOVAS-style star position reduction through a
// small registry of named builtins with fixed numeric signatures:
//   - A Module holds a statically-declared registration table mapping an
//     exposed name to an adapter function and a usage string; construction
//     registers everything once and the table is read-only afterwards.
//   - Arguments cross the boundary as tagged Values. Each builtin declares a
//     "ddddddd"-style signature that is parsed at registration and binds the
//     positional arguments, so shape errors are raised before any adapter
//     logic runs.
//   - The astrometric reduction itself is performed by a Reducer, which
//     follows the external NOVAS calling convention: a zero status code is
//     success and any nonzero code is a library-defined failure. Nonzero
//     codes surface as a NovasError carrying the literal code, and every such
//     failure unwraps to the single shared ErrNovas kind.
//
// Supporting types ported from the original precastro wrapper round out the
// package: Time (two-part Julian Dates with named timescales), Object (a
// catalog entry with radian accessors and sexagesimal parsing), and an
// Ephemeris adapter over JPL binary ephemerides for the parallax term.
package precastro
