package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcarr/xprimary/internal/xrandr"
)

func outputs(names []string, primaryIdx int) []xrandr.Output {
	set := make([]xrandr.Output, len(names))
	for i, n := range names {
		set[i] = xrandr.Output{Name: n, Connected: true, Primary: i == primaryIdx}
	}
	return set
}

func TestCurrentPrimary(t *testing.T) {
	idx, name, ok := CurrentPrimary(outputs([]string{"DP-2", "HDMI-0"}, 1))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "HDMI-0", name)

	_, _, ok = CurrentPrimary(outputs([]string{"DP-2", "HDMI-0"}, -1))
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name       string
		outputs    []string
		primaryIdx int
		want       string
	}{
		{"advances to the following output", []string{"DP-2", "HDMI-0", "DP-1"}, 0, "HDMI-0"},
		{"wraps from the last output", []string{"DP-2", "HDMI-0", "DP-1"}, 2, "DP-2"},
		{"middle of the list", []string{"DP-2", "HDMI-0", "DP-1"}, 1, "DP-1"},
		{"no primary picks the first", []string{"DP-2", "HDMI-0"}, -1, "DP-2"},
		{"single output re-selects itself", []string{"DP-2"}, 0, "DP-2"},
		{"single output without primary", []string{"DP-2"}, -1, "DP-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(outputs(tt.outputs, tt.primaryIdx))
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestNextAlwaysChangesWithTwoOrMore(t *testing.T) {
	set := outputs([]string{"DP-2", "HDMI-0", "DP-1", "DP-3"}, 0)
	for i := range set {
		for j := range set {
			set[j].Primary = j == i
		}
		next := Next(set)
		assert.NotEqual(t, set[i].Name, next.Name, "primary at %d must move", i)
	}
}

func TestDefault(t *testing.T) {
	set := outputs([]string{"DP-2", "HDMI-0"}, 0)

	never := func(hint string) (string, bool) {
		t.Fatalf("resolver called with %q, expected no call", hint)
		return "", false
	}
	miss := func(string) (string, bool) { return "", false }

	t.Run("no preference falls back to first with a notice", func(t *testing.T) {
		target, noPreference := Default(set, "", false, never)
		assert.Equal(t, "DP-2", target)
		assert.True(t, noPreference)
	})

	t.Run("resolved preference is used", func(t *testing.T) {
		resolve := func(hint string) (string, bool) {
			assert.Equal(t, "Acer Technologies Acer XF270H B 0x9372943C", hint)
			return "HDMI-0", true
		}
		target, noPreference := Default(set, "Acer Technologies Acer XF270H B 0x9372943C", true, resolve)
		assert.Equal(t, "HDMI-0", target)
		assert.False(t, noPreference)
	})

	t.Run("unresolvable preference is tried as a connector name", func(t *testing.T) {
		target, noPreference := Default(set, "HDMI-0", true, miss)
		assert.Equal(t, "HDMI-0", target)
		assert.False(t, noPreference)
	})

	t.Run("target absent from the live set falls back to first", func(t *testing.T) {
		target, noPreference := Default(set, "DP-9", true, miss)
		assert.Equal(t, "DP-2", target)
		assert.False(t, noPreference)
	})

	t.Run("resolved target absent from the live set falls back to first", func(t *testing.T) {
		resolve := func(string) (string, bool) { return "DP-9", true }
		target, _ := Default(set, "Old Monitor Description", true, resolve)
		assert.Equal(t, "DP-2", target)
	})
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		count   int
		want    int
		wantErr bool
	}{
		{"first entry", "1\n", 3, 0, false},
		{"last entry", "3\n", 3, 2, false},
		{"surrounding whitespace", "  2  \n", 3, 1, false},
		{"zero is out of range", "0\n", 3, 0, true},
		{"beyond the list", "4\n", 3, 0, true},
		{"negative", "-1\n", 3, 0, true},
		{"non-numeric", "abc\n", 3, 0, true},
		{"empty line", "\n", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.line, tt.count)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
