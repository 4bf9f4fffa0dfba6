package switches

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/models"
)

type stateTransport interface {
	VirtualRenderer(ctx context.Context, udn string) (models.Renderer, error)
	TransportInfo(ctx context.Context, rendererUdn string) (models.TransportInfo, error)
}

type snapshotLookup interface {
	FindRoomByRendererUdn(rendererUdn string) (models.Room, bool)
}

type switchPusher interface {
	// sets the switch value of the accessory, no-op for unknown ids
	PushSwitchState(id string, on bool)
}

type taskScheduler interface {
	Schedule(owner string, name string, delay time.Duration, fn func())
}

// Projector works out whether an accessory's switch is on.
type Projector struct {
	logger    *log.Logger
	transport stateTransport
	snapshot  snapshotLookup
	pusher    switchPusher
	tasks     taskScheduler
	pushDelay time.Duration
}

func NewProjector(logger *log.Logger, transport stateTransport, snapshot snapshotLookup, pusher switchPusher, tasks taskScheduler, pushDelay time.Duration) *Projector {
	return &Projector{
		logger:    logger,
		transport: transport,
		snapshot:  snapshot,
		pusher:    pusher,
		tasks:     tasks,
		pushDelay: pushDelay,
	}
}

// GetState returns the switch value of the accessory. known is false when no
// value can be determined right now: the virtual zone's state is fetched
// asynchronously and pushed onto the switch once it arrives.
func (p *Projector) GetState(ctx context.Context, acc models.Accessory) (on bool, known bool) {
	if acc.IsVirtualZone() {
		go func() {
			if err := p.RefreshVirtualZone(context.WithoutCancel(ctx), acc); err != nil {
				p.logger.Warn("unable to read virtual zone state", "udn", acc.Context.DeviceUdn, "err", err)
			}
		}()
		return false, false
	}

	room, found := p.snapshot.FindRoomByRendererUdn(acc.Context.DeviceUdn)
	if !found {
		p.logger.Debug("no room in the zone configuration for accessory", "name", acc.DisplayName, "udn", acc.Context.DeviceUdn)
		return false, false
	}
	return room.IsActive(), true
}

// RefreshVirtualZone queries the transport state of the virtual zone and
// schedules pushing the result onto its switch.
func (p *Projector) RefreshVirtualZone(ctx context.Context, acc models.Accessory) error {
	renderer, err := p.transport.VirtualRenderer(ctx, acc.Context.DeviceUdn)
	if err != nil {
		return fmt.Errorf("error resolving virtual renderer (%s): %w", acc.Context.DeviceUdn, err)
	}

	info, err := p.transport.TransportInfo(ctx, renderer.Udn)
	if err != nil {
		return fmt.Errorf("error reading transport info (%s): %w", renderer.Udn, err)
	}

	on := info.IsPlaying()
	p.logger.Debug("virtual zone transport state", "state", info.CurrentTransportState, "on", on)
	p.tasks.Schedule(acc.ID, constants.TaskStatePush, p.pushDelay, func() {
		p.pusher.PushSwitchState(acc.ID, on)
	})
	return nil
}

// Refresh pushes the current value of any accessory onto its switch.
func (p *Projector) Refresh(ctx context.Context, acc models.Accessory) error {
	if acc.IsVirtualZone() {
		return p.RefreshVirtualZone(ctx, acc)
	}
	on, _ := p.GetState(ctx, acc)
	p.pusher.PushSwitchState(acc.ID, on)
	return nil
}
