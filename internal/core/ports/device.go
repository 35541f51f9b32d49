package ports

import "context"

// PinningBridge wraps the platform device-pinning capability. On platforms
// without support a no-op implementation is wired in; every method must be
// idempotent because the lock controller re-asserts deliberately.
type PinningBridge interface {
	StartPinning(ctx context.Context) error
	StopPinning(ctx context.Context) error
	DisableExitGesture(ctx context.Context) error
	EnableExitGesture(ctx context.Context) error
}
