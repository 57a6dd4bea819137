// Package selector decides which connected output becomes the next
// primary monitor. Everything here is a pure function of its inputs so
// the selection rules can be tested with canned output lists.
package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lcarr/xprimary/internal/xrandr"
)

// CurrentPrimary returns the index and name of the first output marked
// primary, or ok=false when none is.
func CurrentPrimary(outputs []xrandr.Output) (idx int, name string, ok bool) {
	for i, o := range outputs {
		if o.Primary {
			return i, o.Name, true
		}
	}
	return 0, "", false
}

// Next returns the output after the current primary in query order,
// wrapping around. With no primary set the first output is chosen, and
// a single output re-selects itself.
func Next(outputs []xrandr.Output) xrandr.Output {
	idx, _, ok := CurrentPrimary(outputs)
	if !ok {
		idx = -1
	}
	return outputs[(idx+1)%len(outputs)]
}

// ResolveFunc maps a config preference to a connector name.
type ResolveFunc func(hint string) (string, bool)

// Default computes the Config-Default target. pref carries the
// preference extracted from the Sway config; prefOK is false when none
// was configured, in which case the first output is chosen and
// noPreference is reported so the caller can surface an informational
// notice. An unresolvable preference is tried verbatim as a connector
// name, and a target missing from the live set falls back silently to
// the first output.
func Default(outputs []xrandr.Output, pref string, prefOK bool, resolve ResolveFunc) (target string, noPreference bool) {
	if !prefOK {
		return outputs[0].Name, true
	}
	target = pref
	if name, ok := resolve(pref); ok {
		target = name
	}
	for _, o := range outputs {
		if o.Name == target {
			return target, false
		}
	}
	return outputs[0].Name, false
}

// ParseSelection interprets a 1-based interactive selection line and
// returns the 0-based index. Non-numeric input or a value outside
// [1, count] is an error; no default is substituted.
func ParseSelection(line string, count int) (int, error) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("invalid selection %q", trimmed)
	}
	return n - 1, nil
}
