package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// ReadOptions controls what elements to read and how to filter them.
type ReadOptions struct {
	App         string // Filter by application name
	Window      string // Filter by window title substring
	PID         int    // Filter by process ID (0 = unset)
	Depth       int    // Max traversal depth (0 = unlimited)
	VisibleOnly bool   // Only include visible elements
}

// ListOptions controls window/app listing.
type ListOptions struct {
	Apps bool   // List applications instead of windows
	PID  int    // Filter by PID
	App  string // Filter by app name
}

// FocusOptions specifies what to focus.
type FocusOptions struct {
	App      string
	Window   string
	WindowID int
	PID      int
}

// ScreenshotOptions configures what to capture.
type ScreenshotOptions struct {
	App      string  // Capture frontmost window of this app
	Window   string  // Capture window matching this title substring
	WindowID int     // Capture window by system ID
	PID      int     // Capture frontmost window of this PID
	Format   string  // "png" or "jpg"
	Quality  int     // JPEG quality 1-100 (ignored for PNG)
	Scale    float64 // Scale factor 0.1-1.0 (default 0.5)
}
