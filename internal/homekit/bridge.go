package homekit

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/brutella/hap"
	"github.com/brutella/hap/accessory"
	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/identity"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/samber/lo"
)

const statusSuccess = 0

type switchHandler interface {
	SwitchState(id string) (on bool, known bool)
	SetSwitch(id string, on bool)
}

// Bridge publishes every managed accessory as a HomeKit switch behind one
// bridge accessory.
type Bridge struct {
	logger   *log.Logger
	bridge   *accessory.Bridge
	store    hap.Store
	pin      string
	addr     string
	debounce time.Duration

	mu       sync.Mutex
	handler  switchHandler
	switches map[string]*accessory.Switch
	order    []string
	changed  chan struct{}
}

func NewBridge(logger *log.Logger, name string, storagePath string, pin string, addr string) *Bridge {
	b := accessory.NewBridge(accessory.Info{
		Name:         name,
		Manufacturer: constants.Manufacturer,
		Model:        constants.RoomModel,
	})
	b.Id = 1

	return &Bridge{
		logger:   logger,
		bridge:   b,
		store:    hap.NewFsStore(storagePath),
		pin:      pin,
		addr:     addr,
		debounce: constants.BridgeRestartDebounce,
		switches: map[string]*accessory.Switch{},
		changed:  make(chan struct{}, 1),
	}
}

// Handle sets where switch reads and writes from HomeKit are sent.
func (b *Bridge) Handle(handler switchHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = handler
}

// AttachSwitch adds the switch for an accessory. Attaching an accessory that
// already has a switch keeps the existing one.
func (b *Bridge) AttachSwitch(acc models.Accessory) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.switches[acc.ID]; ok {
		return
	}

	model := constants.RoomModel
	if acc.IsVirtualZone() {
		model = constants.VirtualZoneName
	}
	sw := accessory.NewSwitch(accessory.Info{
		Name:         acc.DisplayName,
		SerialNumber: acc.ID,
		Manufacturer: constants.Manufacturer,
		Model:        model,
	})
	sw.Id = identity.AccessoryID(acc.ID)

	id := acc.ID
	sw.Switch.On.ValueRequestFunc = func(_ *http.Request) (interface{}, int) {
		return b.readSwitch(id, sw), statusSuccess
	}
	sw.Switch.On.OnValueRemoteUpdate(func(on bool) {
		b.writeSwitch(id, on)
	})

	b.switches[id] = sw
	b.order = append(b.order, id)
	b.notifyChanged()
}

func (b *Bridge) DetachSwitch(acc models.Accessory) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.switches[acc.ID]; !ok {
		return
	}
	delete(b.switches, acc.ID)
	b.order = lo.Without(b.order, acc.ID)
	b.notifyChanged()
}

// PushSwitchState sets the value shown for an accessory. Unknown ids are
// ignored, the accessory may have been removed since the push was scheduled.
func (b *Bridge) PushSwitchState(id string, on bool) {
	b.mu.Lock()
	sw, ok := b.switches[id]
	b.mu.Unlock()

	if !ok {
		b.logger.Debug("switch state push for unknown accessory, ignoring", "id", id)
		return
	}
	sw.Switch.On.SetValue(on)
}

func (b *Bridge) Switch(id string) (*accessory.Switch, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sw, ok := b.switches[id]
	return sw, ok
}

// Run serves the accessories until ctx is done, restarting the server
// whenever the accessory set changes.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		server, err := b.newServer()
		if err != nil {
			return fmt.Errorf("error creating homekit server: %w", err)
		}

		serverCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			done <- server.ListenAndServe(serverCtx)
		}()
		b.logger.Info("HomeKit bridge started", "accessories", b.count())

		select {
		case <-ctx.Done():
			cancel()
			<-done
			return nil

		case err := <-done:
			cancel()
			return fmt.Errorf("homekit server stopped: %w", err)

		case <-b.changed:
			b.settle(ctx)
			b.logger.Info("accessories changed, restarting HomeKit bridge")
			cancel()
			<-done
		}
	}
}

// settle waits until no change has been signalled for the debounce period.
func (b *Bridge) settle(ctx context.Context) {
	timer := time.NewTimer(b.debounce)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.changed:
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(b.debounce)
		case <-timer.C:
			return
		}
	}
}

func (b *Bridge) newServer() (*hap.Server, error) {
	b.mu.Lock()
	as := lo.Map(b.order, func(id string, _ int) *accessory.A {
		return b.switches[id].A
	})
	// the snapshot covers every change signalled so far
	select {
	case <-b.changed:
	default:
	}
	b.mu.Unlock()

	server, err := hap.NewServer(b.store, b.bridge.A, as...)
	if err != nil {
		return nil, err
	}
	server.Pin = b.pin
	server.Addr = b.addr
	return server, nil
}

func (b *Bridge) readSwitch(id string, sw *accessory.Switch) bool {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()

	if handler == nil {
		return sw.Switch.On.Value()
	}
	on, known := handler.SwitchState(id)
	if !known {
		// the real value is pushed once it's known
		return sw.Switch.On.Value()
	}
	return on
}

func (b *Bridge) writeSwitch(id string, on bool) {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()

	if handler == nil {
		b.logger.Warn("switch changed before a handler was set, ignoring", "id", id)
		return
	}
	handler.SetSwitch(id, on)
}

func (b *Bridge) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

func (b *Bridge) notifyChanged() {
	select {
	case b.changed <- struct{}{}:
	default:
		// already pending
	}
}
