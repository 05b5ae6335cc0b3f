package precastro

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/soniakeys/meeus/v3/base"
)

func TestNewObjectDefaults(t *testing.T) {
	obj := NewObject()
	if obj.Entry.PromoEpoch != base.J2000 {
		t.Fatalf("proper-motion epoch should default to J2000, got %v", obj.Entry.PromoEpoch)
	}
}

func TestObjectRadianAccessors(t *testing.T) {
	obj := NewObject()
	obj.SetRADec(math.Pi/2, -math.Pi/4)
	if math.Abs(obj.Entry.RA-6) > 1e-12 {
		t.Fatalf("RA hours = %v, want 6", obj.Entry.RA)
	}
	if math.Abs(obj.Entry.Dec+45) > 1e-12 {
		t.Fatalf("Dec degrees = %v, want -45", obj.Entry.Dec)
	}
	if math.Abs(obj.RA()-math.Pi/2) > 1e-12 || math.Abs(obj.Dec()+math.Pi/4) > 1e-12 {
		t.Fatalf("radian round trip failed: %v %v", obj.RA(), obj.Dec())
	}
}

func TestObjectParseRADec(t *testing.T) {
	obj := NewObject()
	if err := obj.ParseRADec("12:30:45", "-01:30:00"); err != nil {
		t.Fatalf("ParseRADec failed: %v", err)
	}
	if math.Abs(obj.Entry.RA-12.5125) > 1e-12 || math.Abs(obj.Entry.Dec+1.5) > 1e-12 {
		t.Fatalf("parsed entry mismatch: %+v", obj.Entry)
	}
	if err := obj.ParseRADec("25:00:00", "0:0:0"); err == nil {
		t.Fatal("bad RA should be rejected")
	}
}

func TestObjectDescribe(t *testing.T) {
	obj := NewObject()
	obj.SetPromo(12.5, -3.25)
	obj.Entry.Parallax = 100
	obj.Entry.RadialVelocity = -20
	desc := obj.Describe()
	for _, want := range []string{
		"ICRS J2000:",
		"Proper motion: +12.50 -3.25 mas/yr",
		"Parallax: 100.00 mas",
		"Radial velocity: -20.00 km/s",
		"Proper-motion epoch: 2000/01/01 12:00:00 [TDB]",
	} {
		if !strings.Contains(desc, want) {
			t.Fatalf("Describe missing %q:\n%s", want, desc)
		}
	}
}

func TestObjectAstroPos(t *testing.T) {
	obj := NewObject()
	obj.SetRADec(1.25, -0.5)
	stub := &stubReducer{ra: obj.Entry.RA, dec: obj.Entry.Dec}
	ra, dec, err := obj.AstroPos(stub, 2451545.0, Full)
	if err != nil {
		t.Fatalf("AstroPos failed: %v", err)
	}
	if math.Abs(ra-1.25) > 1e-12 || math.Abs(dec+0.5) > 1e-12 {
		t.Fatalf("AstroPos radians mismatch: %v %v", ra, dec)
	}
	if stub.lastAcc != Full {
		t.Fatalf("expected full accuracy, got %v", stub.lastAcc)
	}
}

func TestObjectAstroPosReducedAccuracy(t *testing.T) {
	obj := NewObject()
	stub := &stubReducer{}
	if _, _, err := obj.AstroPos(stub, 2451545.0, Reduced); err != nil {
		t.Fatalf("AstroPos failed: %v", err)
	}
	if stub.lastAcc != Reduced {
		t.Fatalf("accuracy selector not passed through: %v", stub.lastAcc)
	}
}

func TestObjectAstroPosFailure(t *testing.T) {
	obj := NewObject()
	stub := &stubReducer{code: 23}
	_, _, err := obj.AstroPos(stub, 2451545.0, Full)
	var novasErr *NovasError
	if !errors.As(err, &novasErr) || novasErr.Code != 23 {
		t.Fatalf("expected NovasError code 23, got %v", err)
	}
}

func TestObjectAstroPosTime(t *testing.T) {
	obj := NewObject()
	stub := &stubReducer{}
	tai, err := TimeFromJD(2451545.0, TAI)
	if err != nil {
		t.Fatalf("TimeFromJD failed: %v", err)
	}
	if _, _, err := obj.AstroPosTime(stub, tai, Full); err != nil {
		t.Fatalf("AstroPosTime failed: %v", err)
	}
	if math.Abs(stub.lastJD-(2451545.0+32.184/86400)) > 1e-9 {
		t.Fatalf("time not converted to TT: %v", stub.lastJD)
	}
}

func TestObjectFromSesame(t *testing.T) {
	body := strings.Join([]string{
		"# some header",
		"%J 187.27791 2.05240 = 12:29:06.69 +02:03:08.6",
		"%P -26.45 -12.85",
		"%X 6.08",
		"%V v 1284.0",
		"",
	}, "\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	obj := NewObject()
	if err := obj.FromSesame(context.Background(), srv.Client(), srv.URL, "M87"); err != nil {
		t.Fatalf("FromSesame failed: %v", err)
	}
	if math.Abs(obj.Entry.RA-187.27791/15) > 1e-9 {
		t.Fatalf("RA hours = %v", obj.Entry.RA)
	}
	if math.Abs(obj.Entry.Dec-2.05240) > 1e-9 {
		t.Fatalf("Dec = %v", obj.Entry.Dec)
	}
	if obj.Entry.ProMoRA != -26.45 || obj.Entry.ProMoDec != -12.85 {
		t.Fatalf("proper motion = %v %v", obj.Entry.ProMoRA, obj.Entry.ProMoDec)
	}
	if obj.Entry.Parallax != 6.08 {
		t.Fatalf("parallax = %v", obj.Entry.Parallax)
	}
	if obj.Entry.RadialVelocity != 1284.0 {
		t.Fatalf("radial velocity = %v", obj.Entry.RadialVelocity)
	}
}

func TestObjectFromSesameFailureLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#! Sesame: nothing found\n"))
	}))
	defer srv.Close()

	obj := NewObject()
	err := obj.FromSesame(context.Background(), srv.Client(), srv.URL, "does not exist")
	if err == nil || !strings.Contains(err.Error(), "nothing found") {
		t.Fatalf("expected lookup failure, got %v", err)
	}
}
