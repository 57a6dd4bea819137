// Package sway resolves monitor hints from a Sway config to X11
// connector names using swaymsg.
package sway

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/lcarr/xprimary/internal/logger"
)

// OutputRecord is one entry from swaymsg -t get_outputs. Fields absent
// from the payload decode as empty strings.
type OutputRecord struct {
	Name        string `json:"name"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
}

// connectorRe matches hints that already name a connector, like DP-2,
// HDMI-0 or eDP-1. Those need no compositor lookup.
var connectorRe = regexp.MustCompile(`^(e?DP|HDMI|DVI|VGA|USB-C|LVDS|Virtual|X11)-`)

// FetchFunc returns the compositor's current output records. Tests
// substitute canned records here.
type FetchFunc func() ([]OutputRecord, error)

// Resolver maps preference hints to connector names.
type Resolver struct {
	fetch FetchFunc
}

// NewResolver returns a Resolver backed by the real swaymsg binary.
func NewResolver() *Resolver {
	return &Resolver{fetch: fetchOutputs}
}

// NewResolverWithFetch returns a Resolver using a custom fetch.
func NewResolverWithFetch(fetch FetchFunc) *Resolver {
	return &Resolver{fetch: fetch}
}

func fetchOutputs() ([]OutputRecord, error) {
	raw, err := exec.Command("swaymsg", "-t", "get_outputs").Output()
	if err != nil {
		return nil, fmt.Errorf("swaymsg -t get_outputs: %w", err)
	}
	var records []OutputRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse swaymsg output: %w", err)
	}
	return records, nil
}

// Resolve maps hint to a connector name. Connector-style hints pass
// through untouched. Other hints match a record's description exactly,
// or the trimmed "make model serial" concatenation for configs written
// before sway exposed description. A failed compositor query or an
// unmatched hint yields absence, never an error; the caller decides the
// fallback.
func (r *Resolver) Resolve(hint string) (string, bool) {
	if connectorRe.MatchString(hint) {
		return hint, true
	}
	records, err := r.fetch()
	if err != nil {
		logger.Debugf("hint lookup unavailable: %v", err)
		return "", false
	}
	for _, rec := range records {
		if rec.Description != "" && rec.Description == hint {
			return rec.Name, true
		}
		combo := strings.TrimSpace(rec.Make + " " + rec.Model + " " + rec.Serial)
		if combo != "" && combo == hint {
			return rec.Name, true
		}
	}
	return "", false
}
