package precastro

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSesameURL is the CDS Sesame name resolver endpoint.
const DefaultSesameURL = "http://cdsweb.u-strasbg.fr/cgi-bin/nph-sesame"

// FromSesame fills in the object's catalog fields from the SIMBAD/Sesame
// database. Coordinates, proper motion, parallax, and radial velocity are
// set when the service provides them. A nil client uses
// http.DefaultClient; an empty baseURL uses DefaultSesameURL.
//
// SIMBAD can be inconsistent about proper-motion epochs; for some sources
// the coordinates are referred to J2000 and for others the proper-motion
// epoch must be discovered and set separately.
func (o *Object) FromSesame(ctx context.Context, client *http.Client, baseURL, ident string) error {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultSesameURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+url.QueryEscape(ident), nil)
	if err != nil {
		return fmt.Errorf("sesame lookup %q: %w", ident, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sesame lookup %q: %w", ident, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sesame lookup %q: unexpected status %s", ident, resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#!") {
			return fmt.Errorf("sesame lookup %q failed: %s", ident, strings.TrimSpace(line[2:]))
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		// Sesame's units happen to match the catalog fields, except the
		// coordinates, which arrive in degrees.
		switch fields[0] {
		case "%J":
			if len(fields) < 3 {
				continue
			}
			raDeg, err1 := strconv.ParseFloat(fields[1], 64)
			decDeg, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 == nil && err2 == nil {
				o.Entry.RA = raDeg / 15
				o.Entry.Dec = decDeg
			}
		case "%P":
			if len(fields) < 3 {
				continue
			}
			pmra, err1 := strconv.ParseFloat(fields[1], 64)
			pmdec, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 == nil && err2 == nil {
				o.Entry.ProMoRA = pmra
				o.Entry.ProMoDec = pmdec
			}
		case "%X":
			if len(fields) < 2 {
				continue
			}
			if plx, err := strconv.ParseFloat(fields[1], 64); err == nil {
				o.Entry.Parallax = plx
			}
		case "%V":
			if len(fields) < 3 {
				continue
			}
			if rv, err := strconv.ParseFloat(fields[2], 64); err == nil {
				o.Entry.RadialVelocity = rv
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("sesame lookup %q: %w", ident, err)
	}
	return nil
}
