// Package notify sends best-effort desktop notifications over the
// session bus. Delivery failures are logged at debug level and never
// affect the run.
package notify

import (
	"github.com/godbus/dbus/v5"

	"github.com/lcarr/xprimary/internal/logger"
)

const (
	appName      = "xprimary"
	appSummary   = "X11 Primary Monitor Switcher"
	errorSummary = "X11 Primary Switcher: Error"
)

var enabled = true

// SetEnabled toggles notification delivery. Disabled delivery turns
// every send into a no-op.
func SetEnabled(on bool) {
	enabled = on
}

func send(summary, body, icon string, timeoutMs int32) {
	if !enabled {
		return
	}
	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Debugf("notify: session bus: %v", err)
		return
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appName,
		uint32(0), // no notification replaced
		icon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{"category": dbus.MakeVariant("device")},
		timeoutMs,
	)
	if call.Err != nil {
		logger.Debugf("notify: %v", call.Err)
	}
}

// OK reports a successful primary switch.
func OK(msg string) {
	send(appSummary, msg, "video-display", 5000)
}

// Info reports a non-error fallback.
func Info(msg string) {
	send(appSummary, msg, "dialog-information", 6000)
}

// Error reports a fatal condition.
func Error(msg string) {
	send(errorSummary, msg, "dialog-error", 8000)
}
