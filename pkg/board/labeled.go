package board

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/textwrap"
	"github.com/arthur-debert/cork/pkg/utils"
)

// Labeled prints value after a "- label:" header padded to
// DefaultJustification columns.
func (b *Board) Labeled(label string, value any) error {
	return b.LabeledJustified(label, value, DefaultJustification)
}

// LabeledJustified prints a labeled value at the current indentation. A nil
// value prints nothing. Slices and arrays are printed as a list under the
// label, one "- item" line per element indented two more columns. Byte
// slices and fmt.Stringer values are scalars. Any other value follows the
// label, padded to justification columns.
func (b *Board) LabeledJustified(label string, value any, justification int) error {
	v, ok := present(value)
	if !ok {
		return nil
	}

	header := "- " + label + ":"
	if s, ok := scalar(value, v); ok {
		line := textwrap.PadRight(header, justification) + s
		return b.WriteLine(b.wrap(line, b.indentation))
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		lines := []string{b.wrap(header, b.indentation)}
		for i := 0; i < v.Len(); i++ {
			item := fmt.Sprint(v.Index(i).Interface())
			lines = append(lines, b.wrap("- "+item, b.indentation+2))
		}
		return b.WriteLine(strings.Join(lines, "\n"))
	}

	line := textwrap.PadRight(header, justification) + fmt.Sprint(v.Interface())
	return b.WriteLine(b.wrap(line, b.indentation))
}

// scalar renders values that print on the label line even though their kind
// is a slice or an array.
func scalar(value any, v reflect.Value) (string, bool) {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), true
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		return string(v.Bytes()), true
	}
	return "", false
}

// present unwraps pointers and interfaces and reports whether anything is
// left to print.
func present(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return reflect.Value{}, false
		}
	}
	return v, true
}

// Path returns p relative to the working directory, quoted in backticks. An
// empty p yields an empty string.
func (b *Board) Path(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	wd, err := b.workingDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPathResolve, "cannot determine working directory")
	}
	return b.PathRelativeTo(p, wd)
}

// PathRelativeTo returns p relative to base, quoted in backticks. An empty p
// yields an empty string.
func (b *Board) PathRelativeTo(p, base string) (string, error) {
	if p == "" {
		return "", nil
	}
	expanded, err := utils.ExpandHome(p)
	if err != nil {
		return "", err
	}
	rel, err := b.relativizer(expanded, base)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrPathResolve {
			return "", err
		}
		return "", errors.Wrapf(err, errors.ErrPathResolve, "cannot relativize %q", p).
			WithDetail("path", p).
			WithDetail("base", base)
	}
	return "`" + rel + "`", nil
}
