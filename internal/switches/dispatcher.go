package switches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/models"
)

type commandTransport interface {
	VirtualRenderer(ctx context.Context, udn string) (models.Renderer, error)
	Play(ctx context.Context, rendererUdn string) error
	Stop(ctx context.Context, rendererUdn string) error
	LeaveStandby(ctx context.Context, rendererUdn string, roomUdn string) error
	EnterManualStandby(ctx context.Context, rendererUdn string, roomUdn string) error
	ConnectRoomToZone(ctx context.Context, roomUdn string, zoneUdn string) error
}

// Dispatcher turns switch changes into transport commands.
type Dispatcher struct {
	logger    *log.Logger
	transport commandTransport
	tasks     taskScheduler
	playDelay time.Duration
}

func NewDispatcher(logger *log.Logger, transport commandTransport, tasks taskScheduler, playDelay time.Duration) *Dispatcher {
	return &Dispatcher{logger: logger, transport: transport, tasks: tasks, playDelay: playDelay}
}

// SetState switches the accessory on or off. acc is a copy taken when the
// command was issued, so udns stay the same for the whole sequence even if
// the topology changes meanwhile. Failures are returned, never retried.
func (d *Dispatcher) SetState(ctx context.Context, acc models.Accessory, on bool) error {
	renderer, err := d.transport.VirtualRenderer(ctx, acc.Context.DeviceUdn)
	if errors.Is(err, models.ErrRendererNotFound) {
		d.logger.Warn("no virtual renderer for accessory, ignoring", "name", acc.DisplayName, "udn", acc.Context.DeviceUdn)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error resolving virtual renderer (%s): %w", acc.Context.DeviceUdn, err)
	}

	d.logger.Info("changing state", "name", acc.DisplayName, "on", on)

	if acc.IsVirtualZone() {
		if on {
			// the zone usually has just been rebuilt, give it time to settle before playing
			d.tasks.Schedule(acc.ID, constants.TaskVirtualZonePlay, d.playDelay, func() {
				if err := d.transport.Play(context.WithoutCancel(ctx), renderer.Udn); err != nil {
					d.logger.Error("error playing virtual zone", "udn", renderer.Udn, "err", err)
				}
			})
			return nil
		}
		if err := d.transport.Stop(ctx, renderer.Udn); err != nil {
			return fmt.Errorf("error stopping virtual zone (%s): %w", renderer.Udn, err)
		}
		return nil
	}

	roomUdn := acc.Context.RoomUdn
	if !on {
		if err := d.transport.EnterManualStandby(ctx, renderer.Udn, roomUdn); err != nil {
			return fmt.Errorf("error entering standby for room (%s): %w", roomUdn, err)
		}
		return nil
	}

	// each step needs the previous one acknowledged
	if err := d.transport.LeaveStandby(ctx, renderer.Udn, roomUdn); err != nil {
		return fmt.Errorf("error leaving standby for room (%s): %w", roomUdn, err)
	}
	if err := d.transport.Play(ctx, renderer.Udn); err != nil {
		return fmt.Errorf("error playing room (%s): %w", roomUdn, err)
	}
	if err := d.transport.ConnectRoomToZone(ctx, roomUdn, acc.Context.ZoneUdn); err != nil {
		return fmt.Errorf("error connecting room (%s) to zone (%s): %w", roomUdn, acc.Context.ZoneUdn, err)
	}
	return nil
}
