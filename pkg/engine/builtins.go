package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/emboss/pkg/boss"
	"github.com/chazu/emboss/pkg/compose"
	"github.com/chazu/emboss/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpSolid wraps a kernel.Solid so geometry can flow between builtins.
type sexpSolid struct {
	solid kernel.Solid
	label string // what produced it, for display and error messages
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %s)", s.label)
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks whether a Sexp is a preprocessed keyword string, returning
// the keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			i++
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
		} else {
			// Keyword at end with no value, treat as flag with nil.
			result.kw[name] = zygo.SexpNull
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toSolid extracts a kernel.Solid from a sexpSolid.
func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	if w, ok := s.(*sexpSolid); ok {
		return w.solid, nil
	}
	return nil, fmt.Errorf("expected solid, got %T (%s)", s, s.SexpString(nil))
}

// floatKW stores the keyword value into dst when present.
func floatKW(pa kwArgs, key, ctx string, dst *float64) error {
	v, ok := pa.kw[key]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ctx, key, err)
	}
	*dst = f
	return nil
}

// orientKW reads the :floating flag into an Orientation.
func orientKW(pa kwArgs, ctx string, dst *boss.Orientation) error {
	v, ok := pa.kw["floating"]
	if !ok {
		return nil
	}
	f, err := toBool(v)
	if err != nil {
		return fmt.Errorf("%s: floating: %w", ctx, err)
	}
	if f {
		*dst = boss.Floating
	} else {
		*dst = boss.Grounded
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the emboss DSL builtins into a zygomys
// environment. Generator builtins construct solids with the shared
// boss.Builder; (part ...) records emitted parts into the Build.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens become recognizable string
// literals and hyphenated names become underscore form.
func registerBuiltins(env *zygo.Zlisp, b *boss.Builder, build *Build) {

	// -----------------------------------------------------------------------
	// (boss :height 10 :width 10 :fillet 2 :floating true)
	// -----------------------------------------------------------------------
	env.AddFunction("boss", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var spec boss.BossSpec
		for key, dst := range map[string]*float64{
			"height": &spec.Height,
			"width":  &spec.Width,
			"fillet": &spec.Fillet,
		} {
			if err := floatKW(pa, key, "boss", dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		if err := orientKW(pa, "boss", &spec.Orient); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{solid: b.Boss(spec), label: "boss"}, nil
	})

	// -----------------------------------------------------------------------
	// (clearance-hole :diameter 3 :depth 10 :width 10 :floating true)
	// (interference-hole :diameter 3 :depth 10 :width 10)
	//
	// Registered with underscores; the preprocessor converts the
	// hyphenated source forms.
	// -----------------------------------------------------------------------
	holeBuiltin := func(ctx string, gen func(boss.HoleSpec) kernel.Solid) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			var spec boss.HoleSpec
			for key, dst := range map[string]*float64{
				"diameter": &spec.Diameter,
				"depth":    &spec.Depth,
				"width":    &spec.Width,
			} {
				if err := floatKW(pa, key, ctx, dst); err != nil {
					return zygo.SexpNull, err
				}
			}
			if err := orientKW(pa, ctx, &spec.Orient); err != nil {
				return zygo.SexpNull, err
			}
			return &sexpSolid{solid: gen(spec), label: ctx}, nil
		}
	}
	env.AddFunction("clearance_hole", holeBuiltin("clearance-hole", b.ClearanceHole))
	env.AddFunction("interference_hole", holeBuiltin("interference-hole", b.InterferenceHole))

	// -----------------------------------------------------------------------
	// (head-recess :head-dia 5.4 :head-height 3 :pilot 3 :width 10
	//              :height 10 :layer 0.2 :floating true)
	// -----------------------------------------------------------------------
	env.AddFunction("head_recess", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var spec boss.HeadRecessSpec
		for key, dst := range map[string]*float64{
			"head-dia":    &spec.HeadDiameter,
			"head-height": &spec.HeadHeight,
			"pilot":       &spec.PilotDiameter,
			"width":       &spec.Width,
			"height":      &spec.BossHeight,
			"layer":       &spec.LayerHeight,
		} {
			if err := floatKW(pa, key, "head-recess", dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		if err := orientKW(pa, "head-recess", &spec.Orient); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{solid: b.HeadRecess(spec), label: "head-recess"}, nil
	})

	// -----------------------------------------------------------------------
	// (nut-trap :nut-width 5.5 :nut-height 2.4 :height 10 :width 10
	//           :pilot 3 :layer 0.2 :angle 90 :floating true)
	// -----------------------------------------------------------------------
	env.AddFunction("nut_trap", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		var spec boss.NutTrapSpec
		for key, dst := range map[string]*float64{
			"nut-width":  &spec.NutWidth,
			"nut-height": &spec.NutHeight,
			"height":     &spec.BossHeight,
			"width":      &spec.Width,
			"pilot":      &spec.PilotDiameter,
			"layer":      &spec.LayerHeight,
			"angle":      &spec.Angle,
		} {
			if err := floatKW(pa, key, "nut-trap", dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		if err := orientKW(pa, "nut-trap", &spec.Orient); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{solid: b.NutTrap(spec), label: "nut-trap"}, nil
	})

	// -----------------------------------------------------------------------
	// (difference base neg1 neg2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("difference", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("difference requires a base solid")
		}
		base, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("difference: base: %w", err)
		}
		negs := make([]kernel.Solid, 0, len(args)-1)
		for i, a := range args[1:] {
			s, err := toSolid(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("difference: argument %d: %w", i+2, err)
			}
			negs = append(negs, s)
		}
		return &sexpSolid{solid: compose.Subtract(b.Kernel(), base, negs...), label: "difference"}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b ...)
	// -----------------------------------------------------------------------
	env.AddFunction("union", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("union requires at least one solid")
		}
		out, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("union: argument 1: %w", err)
		}
		for i, a := range args[1:] {
			s, err := toSolid(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("union: argument %d: %w", i+2, err)
			}
			out = b.Kernel().Union(out, s)
		}
		return &sexpSolid{solid: out, label: "union"}, nil
	})

	// -----------------------------------------------------------------------
	// (translate s :x 1 :y 2 :z 3)
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("translate requires a solid as first argument")
		}
		s, err := toSolid(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		var x, y, z float64
		for key, dst := range map[string]*float64{"x": &x, "y": &y, "z": &z} {
			if err := floatKW(pa, key, "translate", dst); err != nil {
				return zygo.SexpNull, err
			}
		}
		return &sexpSolid{solid: b.Kernel().Translate(s, x, y, z), label: "translate"}, nil
	})

	// -----------------------------------------------------------------------
	// (part "name" solid)
	// -----------------------------------------------------------------------
	env.AddFunction("part", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("part requires a name and a solid")
		}
		partName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part: name: %w", err)
		}
		s, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("part %q: %w", partName, err)
		}
		build.AddPart(partName, s)
		return args[1], nil
	})
}
