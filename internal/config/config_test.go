package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/lcarr/xprimary/internal/swayconf"
)

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(func() { viper.Reset(); cfg = nil })

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		c := Get()
		if c.Sway.StartMarker != swayconf.DefaultStartMarker {
			t.Errorf("start marker = %q, want %q", c.Sway.StartMarker, swayconf.DefaultStartMarker)
		}
		if c.Sway.EndMarker != swayconf.DefaultEndMarker {
			t.Errorf("end marker = %q, want %q", c.Sway.EndMarker, swayconf.DefaultEndMarker)
		}
		if !c.Notifications.Enabled {
			t.Error("notifications should default to enabled")
		}
		if c.Sway.ConfigPath != DefaultSwayConfigPath() {
			t.Errorf("sway config path = %q, want %q", c.Sway.ConfigPath, DefaultSwayConfigPath())
		}
	})
}

func TestDefaultSwayConfigPath(t *testing.T) {
	path := DefaultSwayConfigPath()
	if !strings.HasSuffix(path, filepath.Join("sway", "config")) {
		t.Errorf("DefaultSwayConfigPath() = %q, want a sway/config suffix", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("DefaultSwayConfigPath() = %q, want an absolute path", path)
	}
}

func TestGetWithoutInit(t *testing.T) {
	cfg = nil
	c := Get()
	if c == nil {
		t.Fatal("Get() returned nil without Init()")
	}
	if c.Sway.StartMarker != swayconf.DefaultStartMarker {
		t.Errorf("uninitialized Get() lost the marker default: %q", c.Sway.StartMarker)
	}
}
