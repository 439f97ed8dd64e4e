package seximal

import "fmt"

// Form selects one of the three textual renderings of a snap count.
type Form int

const (
	// FormExtended is the delimited lapse:lull:moment.snap form,
	// e.g. "20:34:05.0".
	FormExtended Form = iota
	// FormBasic is the seven-digit base-six snap count, e.g. "2034050".
	FormBasic
	// FormSpan is the three-digit base-six span index, e.g. "203".
	FormSpan
)

// basicDigits is the number of base-six digits in a full-day snap count.
const basicDigits = 7

// ParseForm maps a form name to a Form. "snap" is accepted as an alias
// of "basic", matching the CLI flag of the same name.
func ParseForm(s string) (Form, error) {
	switch s {
	case "extended", "":
		return FormExtended, nil
	case "basic", "snap":
		return FormBasic, nil
	case "span":
		return FormSpan, nil
	}
	return FormExtended, fmt.Errorf("unknown form %q (want extended, basic, snap, or span)", s)
}

// String returns the form's canonical name.
func (f Form) String() string {
	switch f {
	case FormBasic:
		return "basic"
	case FormSpan:
		return "span"
	default:
		return "extended"
	}
}

// Render formats the snap count in the requested form. All three forms
// are cut from the same seven-digit base-six string, which is what makes
// the basic form equal to the extended form with delimiters removed, and
// the span form equal to the basic form's first three digits.
func (t Ticks) Render(f Form) string {
	digits := formatBase(int(t), 6, basicDigits)
	switch f {
	case FormBasic:
		return digits
	case FormSpan:
		return digits[:3]
	default:
		return digits[:2] + ":" + digits[2:4] + ":" + digits[4:6] + "." + digits[6:]
	}
}

// formatBase renders v in the given base, zero-padded to width digits,
// most significant digit first. v must fit in width digits.
func formatBase(v, base, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%base)
		v /= base
	}
	return string(buf)
}
