// Package seximal converts a time of day into Misalian Seximal Units with
// Kunimunean Extensions and renders the result in base six.
//
// A day is divided into 279936 snaps (36 lapses x 36 lulls x 36 moments x
// 6 snaps), so one snap is exactly 25/81 of a standard second. All
// conversion is integer arithmetic on that reduced ratio; no floating
// point is involved, so values on unit boundaries never land in the wrong
// bucket.
//
// # Usage
//
// Convert a duration since midnight and render it:
//
//	ticks := seximal.FromDuration(elapsed)
//	fmt.Println(ticks.Render(seximal.FormExtended)) // "20:34:05.0"
//	fmt.Println(ticks.Render(seximal.FormBasic))    // "2034050"
//	fmt.Println(ticks.Render(seximal.FormSpan))     // "203"
//
// The three forms are views of the same seven-digit base-six string:
// stripping the delimiters from the extended form yields the basic form,
// and the span form is the basic form's first three digits.
//
// # Precision
//
// Sub-snap precision truncates. A time of day keeps at most one seximal
// fraction digit (the snap), and anything finer is floored away before
// rendering.
package seximal
