package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lcarr/xprimary/internal/config"
	"github.com/lcarr/xprimary/internal/logger"
	"github.com/lcarr/xprimary/internal/notify"
	"github.com/lcarr/xprimary/internal/selector"
	"github.com/lcarr/xprimary/internal/sway"
	"github.com/lcarr/xprimary/internal/swayconf"
	"github.com/lcarr/xprimary/internal/xrandr"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	flagAutoSwitch bool
	flagDefault    bool
	flagStatus     bool
	flagConfig     string

	rootCmd = &cobra.Command{
		Use:   "xprimary",
		Short: "xprimary - X11 primary monitor switcher",
		Long: `Xprimary switches the primary monitor of an X11 (XWayland) session.
The target can be picked interactively, cycled automatically, or taken
from a Primary Monitor block in the Sway config, where a human-readable
monitor description is resolved to a connector name via swaymsg.`,
		SilenceUsage: true,
		RunE:         runRoot,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.Flags().BoolVar(&flagAutoSwitch, "auto-switch", false, "Cycle the primary to the next connected X11 output")
	rootCmd.Flags().BoolVar(&flagDefault, "default", false, "Set primary to the monitor named in the Sway config Primary Monitor block")
	rootCmd.Flags().BoolVar(&flagStatus, "status", false, "Print the current primary X11 output and exit")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to Sway config (default: $XDG_CONFIG_HOME/sway/config)")
}

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Faint(true)
)

type mode int

const (
	modeInteractive mode = iota
	modeStatus
	modeAuto
	modeDefault
)

// pickMode applies the first-match-wins flag precedence:
// status > auto > default > interactive.
func pickMode() mode {
	switch {
	case flagStatus:
		return modeStatus
	case flagAutoSwitch:
		return modeAuto
	case flagDefault:
		return modeDefault
	default:
		return modeInteractive
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return err
	}
	cfg := config.Get()
	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}
	notify.SetEnabled(cfg.Notifications.Enabled)

	xr := xrandr.NewClient()
	outputs, err := xr.Outputs()
	if err != nil {
		notify.Error("xrandr --query failed. Are you in a Wayland session with XWayland? Is xrandr installed?")
		return fmt.Errorf("xrandr --query failed: %w", err)
	}
	if len(outputs) == 0 {
		notify.Error("No connected X11 outputs found.")
		return fmt.Errorf("no connected X11 outputs found")
	}

	switch pickMode() {
	case modeStatus:
		return runStatus(cmd.OutOrStdout(), outputs)
	case modeAuto:
		return runAuto(xr, outputs)
	case modeDefault:
		return runDefault(xr, outputs, cfg, sway.NewResolver().Resolve)
	default:
		return runInteractive(xr, outputs, os.Stdin, cmd.OutOrStdout())
	}
}

func runStatus(w io.Writer, outputs []xrandr.Output) error {
	_, name, ok := selector.CurrentPrimary(outputs)
	if !ok {
		// No primary set is a valid state, not an error.
		fmt.Fprintln(w, "(none)")
		return nil
	}
	fmt.Fprintf(w, "Primary monitor: %s.\n", nameStyle.Render(name))
	return nil
}

func runAuto(xr *xrandr.Client, outputs []xrandr.Output) error {
	_, current, ok := selector.CurrentPrimary(outputs)
	if !ok {
		current = "none"
	}
	target := selector.Next(outputs)
	if err := xr.SetPrimary(target.Name); err != nil {
		notify.Error(fmt.Sprintf("Failed to set primary to %s.", target.Name))
		return err
	}
	notify.OK(fmt.Sprintf("Auto-switched primary: %s -> %s.", current, target.Name))
	return nil
}

func runDefault(xr *xrandr.Client, outputs []xrandr.Output, cfg *config.Config, resolve selector.ResolveFunc) error {
	path := flagConfig
	if path == "" {
		path = cfg.Sway.ConfigPath
	}
	pref, ok := swayconf.PreferenceFromFile(path, cfg.Sway.StartMarker, cfg.Sway.EndMarker)
	target, noPreference := selector.Default(outputs, pref, ok, resolve)
	if noPreference {
		notify.Info("No primary monitor set in Sway config. Choosing first monitor.")
	}
	if err := xr.SetPrimary(target); err != nil {
		notify.Error(fmt.Sprintf("Failed to set primary to %s", target))
		return err
	}
	notify.OK(fmt.Sprintf("Primary set (default mode) -> %s", target))
	return nil
}

func runInteractive(xr *xrandr.Client, outputs []xrandr.Output, in io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "Detected X11 outputs:")
	for i, o := range outputs {
		annotation := ""
		if o.Primary {
			annotation = "  " + currentStyle.Render("(current primary)")
		}
		fmt.Fprintf(w, "  %d. %s%s\n", i+1, nameStyle.Render(o.Name), annotation)
	}
	fmt.Fprint(w, "Pick a number to set as primary: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		notify.Error("Failed to read input.")
		return fmt.Errorf("read selection: %w", err)
	}
	idx, err := selector.ParseSelection(line, len(outputs))
	if err != nil {
		notify.Error("Invalid selection.")
		return err
	}

	target := outputs[idx].Name
	if err := xr.SetPrimary(target); err != nil {
		notify.Error(fmt.Sprintf("Failed to set primary to %s.", target))
		return err
	}
	notify.OK(fmt.Sprintf("Primary set (interactive) -> %s.", target))
	return nil
}
