// Package actions defines the input-primitive collaborator: the four
// operations the orchestrator dispatches resolved steps to. The physical
// screen and input devices are one shared resource; serialization across
// commands happens in the orchestrator's session, not here.
package actions

import (
	"context"
	"fmt"

	"github.com/voxctl/voxctl/internal/platform"
)

// Actuator performs low-level input. Implementations may block; any error
// becomes a step-level error upstream, never a crash.
type Actuator interface {
	Click(ctx context.Context, x, y int) error
	Type(ctx context.Context, text string) error
	KeyPress(ctx context.Context, keys []string) error
	Scroll(ctx context.Context, direction string, amount int) error
}

// inputterActuator adapts the platform input backend to the Actuator
// surface used by the pipeline.
type inputterActuator struct {
	in platform.Inputter
}

// NewActuator wraps a platform Inputter.
func NewActuator(in platform.Inputter) Actuator {
	return &inputterActuator{in: in}
}

func (a *inputterActuator) Click(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.in.Click(x, y, platform.MouseLeft, 1)
}

func (a *inputterActuator) Type(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.in.TypeText(text, 0)
}

func (a *inputterActuator) KeyPress(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.in.KeyCombo(keys)
}

func (a *inputterActuator) Scroll(ctx context.Context, direction string, amount int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var dx, dy int
	switch direction {
	case "up":
		dy = amount
	case "down":
		dy = -amount
	case "left":
		dx = amount
	case "right":
		dx = -amount
	default:
		return fmt.Errorf("invalid scroll direction %q: use up, down, left, or right", direction)
	}
	return a.in.Scroll(0, 0, dx, dy)
}
