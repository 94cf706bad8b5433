package devices

import (
	"context"

	"framecast/internal/domain/entity"
)

// Registry is the external device-registration service. Device records are
// referenced during fan-out, never owned here.
type Registry interface {
	ListDevices(ctx context.Context) ([]entity.Device, error)
}
