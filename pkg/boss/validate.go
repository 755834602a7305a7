package boss

import "fmt"

// Severity indicates whether a validation finding describes geometry
// that will degenerate outright or merely print badly.
type Severity int

const (
	SeverityError   Severity = iota // degenerate or self-intersecting geometry
	SeverityWarning                 // printable but probably not what was wanted
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Finding describes a single validation result.
type Finding struct {
	Field    string   // which spec field is at fault
	Message  string   // human-readable description
	Severity Severity
}

func (f Finding) Error() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// The generators deliberately accept any input and let bad parameters
// degenerate silently; these Validate methods are the advisory layer a
// caller can run beforehand. They are never invoked internally.

// Validate reports findings for a boss body spec.
func (s BossSpec) Validate() []Finding {
	var fs []Finding
	fs = appendPositive(fs, "Height", s.Height)
	fs = appendPositive(fs, "Width", s.Width)
	if s.Fillet < 0 {
		fs = append(fs, Finding{"Fillet", "negative fillet radius", SeverityError})
	}
	if s.Width > 0 && s.Fillet >= s.Width/2 {
		fs = append(fs, Finding{"Fillet", "fillet radius must be less than half the width", SeverityError})
	}
	return fs
}

// Validate reports findings for a bore spec.
func (s HoleSpec) Validate() []Finding {
	var fs []Finding
	fs = appendPositive(fs, "Diameter", s.Diameter)
	fs = appendPositive(fs, "Depth", s.Depth)
	if s.Width > 0 && s.Diameter >= s.Width {
		fs = append(fs, Finding{"Diameter", "bore is wider than the boss and will break its lateral faces", SeverityWarning})
	}
	return fs
}

// Validate reports findings for a head recess spec.
func (s HeadRecessSpec) Validate() []Finding {
	var fs []Finding
	fs = appendPositive(fs, "HeadDiameter", s.HeadDiameter)
	if s.Orient == Floating {
		fs = appendPositive(fs, "BossHeight", s.BossHeight)
	} else {
		fs = appendPositive(fs, "HeadHeight", s.HeadHeight)
		if s.BossHeight > 0 && s.HeadHeight >= s.BossHeight {
			fs = append(fs, Finding{"HeadHeight", "recess is as deep as the boss and leaves no shoulder", SeverityWarning})
		}
	}
	if s.PilotDiameter < 0 {
		fs = append(fs, Finding{"PilotDiameter", "negative pilot diameter", SeverityError})
	}
	if s.PilotDiameter > 0 && s.PilotDiameter >= s.HeadDiameter {
		fs = append(fs, Finding{"PilotDiameter", "pilot bore is at least as wide as the head recess", SeverityWarning})
	}
	if s.PilotDiameter > 0 && s.LayerHeight <= 0 {
		fs = append(fs, Finding{"LayerHeight", "pilot set but layer height missing, bridging cap will be omitted", SeverityWarning})
	}
	return fs
}

// Validate reports findings for a nut trap spec.
func (s NutTrapSpec) Validate() []Finding {
	var fs []Finding
	fs = appendPositive(fs, "NutWidth", s.NutWidth)
	fs = appendPositive(fs, "NutHeight", s.NutHeight)
	if s.BossHeight > 0 && s.NutHeight >= s.BossHeight {
		fs = append(fs, Finding{"NutHeight", "pocket is as tall as the boss", SeverityWarning})
	}
	if s.PilotDiameter > 0 && s.PilotDiameter >= s.NutWidth {
		fs = append(fs, Finding{"PilotDiameter", "pilot bore is at least as wide as the nut pocket", SeverityWarning})
	}
	if s.PilotDiameter > 0 && s.LayerHeight <= 0 {
		fs = append(fs, Finding{"LayerHeight", "pilot set but layer height missing, bridging cap will be omitted", SeverityWarning})
	}
	return fs
}

func appendPositive(fs []Finding, field string, v float64) []Finding {
	if v <= 0 {
		fs = append(fs, Finding{field, "must be positive", SeverityError})
	}
	return fs
}
