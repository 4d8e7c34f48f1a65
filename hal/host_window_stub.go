//go:build !cgo

package hal

import (
	"context"
	"fmt"
)

func RunWindow(_ context.Context, _ Config, _ NewApp) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
