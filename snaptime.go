// Package snaptime renders a wall-clock time of day in Misalian Seximal
// Units with Kunimunean Extensions.
//
// Example usage:
//
//	fmt.Println(snaptime.Now(snaptime.FormExtended)) // "20:34:05.0"
//	fmt.Println(snaptime.At(t, snaptime.FormBasic))  // "2034050"
//
// The heavy lifting lives in pkg/seximal (conversion and rendering) and
// pkg/clock (time-of-day extraction); this package ties the two together
// for the common case.
package snaptime

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/misalian/snaptime/internal/cliconfig"
	"github.com/misalian/snaptime/pkg/clock"
	"github.com/misalian/snaptime/pkg/seximal"
)

// Form selects one of the three output forms.
type Form = seximal.Form

// The three output forms.
const (
	FormExtended = seximal.FormExtended
	FormBasic    = seximal.FormBasic
	FormSpan     = seximal.FormSpan
)

// At renders the given instant's time of day in the requested form. The
// instant's location is honored: pass t.UTC() or t.In(zone) to choose
// the timezone.
func At(t time.Time, f Form) string {
	return seximal.FromDuration(clock.SinceMidnight(t)).Render(f)
}

// Now renders the current UTC time of day in the requested form.
func Now(f Form) string {
	return At(time.Now().UTC(), f)
}

// Logger returns the package-level zerolog logger used by the CLI.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
