// Package platform abstracts the OS surfaces the pipeline touches: the
// accessibility tree, simulated input, window focus, and screen capture.
// Concrete backends register themselves via NewProviderFunc from an init()
// in a platform-specific package.
package platform

import "github.com/voxctl/voxctl/internal/model"

// Reader reads the UI element tree from the OS accessibility layer.
type Reader interface {
	// ReadElements returns the element tree for the specified target.
	ReadElements(opts ReadOptions) ([]model.Element, error)

	// ListWindows returns all windows, optionally filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// Inputter simulates mouse and keyboard input.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
	Scroll(x, y int, dx, dy int) error
	TypeText(text string, delayMs int) error
	KeyCombo(keys []string) error
}

// WindowManager manages window focus.
type WindowManager interface {
	FocusWindow(opts FocusOptions) error
	GetFrontmostApp() (string, int, error)
}

// Screenshotter captures screenshots.
type Screenshotter interface {
	// CaptureWindow captures a specific window or the full screen and
	// returns the image bytes in the requested format.
	CaptureWindow(opts ScreenshotOptions) ([]byte, error)
}
