// Package xrandr reads and mutates X11 output state through the xrandr
// command. It never speaks the X11 protocol itself; xrandr's text output
// is the only contract.
package xrandr

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/lcarr/xprimary/internal/logger"
)

// Output is a single physical output as reported by xrandr --query.
type Output struct {
	Name      string
	Connected bool
	Primary   bool
}

// Runner executes a command and returns its stdout. Tests substitute
// canned xrandr output here.
type Runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Client wraps the xrandr binary.
type Client struct {
	run Runner
}

// NewClient returns a Client backed by the real xrandr binary.
func NewClient() *Client {
	return &Client{run: execRunner}
}

// NewClientWithRunner returns a Client using a custom runner.
func NewClientWithRunner(run Runner) *Client {
	return &Client{run: run}
}

// Output lines look like:
//
//	DP-2 connected primary 2560x1440+0+0 (normal left inverted ...) 597mm x 336mm
//	HDMI-0 connected 1920x1080+2560+0 ...
//	DP-1 disconnected (normal left inverted right x axis y axis)
//
// Mode lines are indented and never match.
var outputRe = regexp.MustCompile(`^([A-Za-z0-9\-_.+:/]+)\s+(connected|disconnected)`)

// ParseOutputs extracts the connected outputs from xrandr --query text,
// in order of first appearance. Disconnected outputs are dropped; lines
// that don't open with a connector token and a connectivity keyword
// carry mode data and are skipped.
func ParseOutputs(text string) []Output {
	var outputs []Output
	for _, line := range strings.Split(text, "\n") {
		m := outputRe.FindStringSubmatch(line)
		if m == nil || m[2] != "connected" {
			continue
		}
		outputs = append(outputs, Output{
			Name:      m[1],
			Connected: true,
			Primary:   strings.Contains(line, " primary "),
		})
	}
	return outputs
}

// Outputs runs xrandr --query and returns the connected outputs. A
// non-zero exit means the session has no usable X11 layer and is
// reported as an error; an empty result is left to the caller.
func (c *Client) Outputs() ([]Output, error) {
	raw, err := c.run("xrandr", "--query")
	if err != nil {
		return nil, fmt.Errorf("xrandr --query: %w", err)
	}
	return ParseOutputs(string(raw)), nil
}

// SetPrimary marks the named output as the X11 primary.
func (c *Client) SetPrimary(name string) error {
	if _, err := c.run("xrandr", "--output", name, "--primary"); err != nil {
		return fmt.Errorf("xrandr --output %s --primary: %w", name, err)
	}
	logger.Debugf("primary set to %s", name)
	return nil
}
