package device

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// command timeout for platform pinning helpers.
const cmdTimeout = 10 * time.Second

// ExecBridge drives device pinning through configured shell commands, one per
// operation. Missing commands are treated as unsupported and succeed silently
// so partial platform support does not break enforcement.
type ExecBridge struct {
	pinCmd     string
	unpinCmd   string
	disableCmd string
	enableCmd  string
	log        zerolog.Logger
}

// NewExecBridge creates a command-backed pinning bridge.
func NewExecBridge(pinCmd, unpinCmd, disableCmd, enableCmd string, log zerolog.Logger) *ExecBridge {
	return &ExecBridge{
		pinCmd:     pinCmd,
		unpinCmd:   unpinCmd,
		disableCmd: disableCmd,
		enableCmd:  enableCmd,
		log:        log,
	}
}

func (b *ExecBridge) StartPinning(ctx context.Context) error {
	return b.run(ctx, "start_pinning", b.pinCmd)
}

func (b *ExecBridge) StopPinning(ctx context.Context) error {
	return b.run(ctx, "stop_pinning", b.unpinCmd)
}

func (b *ExecBridge) DisableExitGesture(ctx context.Context) error {
	return b.run(ctx, "disable_exit_gesture", b.disableCmd)
}

func (b *ExecBridge) EnableExitGesture(ctx context.Context) error {
	return b.run(ctx, "enable_exit_gesture", b.enableCmd)
}

func (b *ExecBridge) run(ctx context.Context, op, cmdline string) error {
	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		b.log.Debug().Str("op", op).Msg("no command configured, skipping")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, cmdTimeout)
	defer cancel()

	parts := strings.Fields(cmdline)
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		b.log.Error().
			Err(err).
			Str("op", op).
			Str("output", strings.TrimSpace(string(out))).
			Msg("pinning command failed")
		return fmt.Errorf("%s: %w", op, err)
	}

	b.log.Debug().Str("op", op).Msg("pinning command ok")
	return nil
}

// NoopBridge is wired on platforms without a pinning capability. All calls
// succeed without side effects.
type NoopBridge struct{}

// NewNoopBridge creates a bridge that ignores every call.
func NewNoopBridge() *NoopBridge { return &NoopBridge{} }

func (*NoopBridge) StartPinning(context.Context) error       { return nil }
func (*NoopBridge) StopPinning(context.Context) error        { return nil }
func (*NoopBridge) DisableExitGesture(context.Context) error { return nil }
func (*NoopBridge) EnableExitGesture(context.Context) error  { return nil }
