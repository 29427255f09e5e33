package wmconf

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nigeltao/grpwm/internal/keys"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("wmcolor", func(fl validator.FieldLevel) bool {
			_, err := colorful.Hex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("layoutkind", func(fl validator.FieldLevel) bool {
			return layoutKinds[LayoutKind(fl.Field().String())]
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			if sl.Current().Interface().(Match).empty() {
				sl.ReportError(sl.Current().Interface(), "Match", "Match", "nonempty", "")
			}
		}, Match{})

		validateInst = v
	})
	return validateInst
}

// Validate checks c for mistakes that would make a host reject it or
// behave surprisingly: malformed colors, unknown layouts, unparseable key
// chords, duplicate group names and empty floating rules.
func Validate(c *Config) error {
	if c == nil {
		return errors.New("wmconf: nil config")
	}
	var errs []error
	if err := validatorInstance().Struct(c); err != nil {
		errs = append(errs, convertValidationError(err))
	}
	if _, err := keys.NewTable(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	seen := make(map[string]bool)
	for _, g := range c.Groups {
		if seen[g.Name] {
			errs = append(errs, fmt.Errorf("groups: duplicate group name %q", g.Name))
		}
		seen[g.Name] = true
	}
	for _, sp := range c.ScratchPads {
		if seen[sp.Name] {
			errs = append(errs, fmt.Errorf("scratchpads: name %q is already a group", sp.Name))
		}
		seen[sp.Name] = true
	}
	return errors.Join(errs...)
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s (got %v)", field, fe.Tag(), fe.Value()))
		}
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "\n"))
}

// minContrast is the smallest CIEDE2000 distance, on go-colorful's 0-1
// scale, at which text stays comfortably readable on its background.
const minContrast = 0.2

// Lint returns warnings about c that do not stop it from working. It
// assumes c has already passed Validate.
func Lint(c *Config) []string {
	var warnings []string
	if t, err := keys.NewTable(c.Keys); err == nil {
		for _, s := range t.Shadows() {
			lost, _ := t.Binding(s.Lost)
			won, _ := t.Binding(s.Won)
			warnings = append(warnings, fmt.Sprintf(
				"key %s: binding %d (%s) is shadowed by binding %d (%s)",
				s.Chord, s.Lost, describe(lost), s.Won, describe(won)))
		}
	}

	d := c.WidgetDefaults
	for i, scr := range c.Screens {
		for pos, bar := range map[string]*Bar{"top": scr.Top, "bottom": scr.Bottom} {
			if bar == nil {
				continue
			}
			for j, w := range bar.Widgets {
				fg, bg := w.Foreground, w.Background
				if fg == "" {
					fg = d.Foreground
				}
				if bg == "" {
					bg = d.Background
				}
				if lowContrast(fg, bg) {
					warnings = append(warnings, fmt.Sprintf(
						"screen %d %s bar widget %d (%s): %s on %s is hard to read",
						i, pos, j, w.Kind, fg, bg))
				}
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

func describe(b keys.Binding) string {
	if b.Desc != "" {
		return b.Desc
	}
	return "no description"
}

func lowContrast(fg, bg string) bool {
	f, err := colorful.Hex(fg)
	if err != nil {
		return false
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return false
	}
	return f.DistanceCIEDE2000(b) < minContrast
}
