package teufel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/concurrency"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/mab2k/homebridge-teufel/internal/topology"
	sse "github.com/r3labs/sse/v2"
)

var ErrUnknownAccessory = errors.New("unknown accessory")

type EventSource interface {
	Subscribe(eventChannel chan *sse.Event)
	Unsubscribe()
}

type ZoneConfigReader interface {
	GetZoneConfiguration(ctx context.Context) ([]byte, error)
}

type AccessoryLoader interface {
	GetAll() ([]models.Accessory, error)
}

type AccessoryReconciler interface {
	SyncRooms(zone *models.Zone)
	SyncVirtualZone(zone *models.Zone)
	RemoveAccessory(rendererUdn string, displayName string) []models.Accessory
	ConfigureAccessory(acc models.Accessory)
	Get(id string) (models.Accessory, bool)
	All() []models.Accessory
}

type SnapshotStore interface {
	Set(cfg *models.ZoneConfiguration)
}

type StateProjector interface {
	GetState(ctx context.Context, acc models.Accessory) (on bool, known bool)
	Refresh(ctx context.Context, acc models.Accessory) error
}

type CommandDispatcher interface {
	SetState(ctx context.Context, acc models.Accessory, on bool) error
}

type TaskCanceller interface {
	CancelOwner(owner string) int
}

// Teufel wires gateway events into the reconciler and switch requests into
// the projector and dispatcher.
type Teufel struct {
	logger          *log.Logger
	events          EventSource
	gateway         ZoneConfigReader
	loader          AccessoryLoader
	reconciler      AccessoryReconciler
	snapshots       SnapshotStore
	projector       StateProjector
	dispatcher      CommandDispatcher
	tasks           TaskCanceller
	refreshThrottle time.Duration

	// used for work started from switch requests, set by Initialise
	ctx context.Context
}

func NewTeufel(
	logger *log.Logger,
	events EventSource,
	gateway ZoneConfigReader,
	loader AccessoryLoader,
	reconciler AccessoryReconciler,
	snapshots SnapshotStore,
	projector StateProjector,
	dispatcher CommandDispatcher,
	tasks TaskCanceller,
	refreshThrottle time.Duration,
) *Teufel {
	return &Teufel{
		logger:          logger,
		events:          events,
		gateway:         gateway,
		loader:          loader,
		reconciler:      reconciler,
		snapshots:       snapshots,
		projector:       projector,
		dispatcher:      dispatcher,
		tasks:           tasks,
		refreshThrottle: refreshThrottle,
		ctx:             context.Background(),
	}
}

// Initialise restores the accessories registered in earlier runs and applies
// the gateway's current zone configuration.
func (t *Teufel) Initialise(ctx context.Context) error {
	t.logger.Debug("Teufel.Initialise")
	t.ctx = ctx

	accessories, err := t.loader.GetAll()
	if err != nil {
		return fmt.Errorf("error restoring accessories: %w", err)
	}
	for _, acc := range accessories {
		t.reconciler.ConfigureAccessory(acc)
	}

	doc, err := t.gateway.GetZoneConfiguration(ctx)
	if err != nil {
		t.logger.Warn("unable to read the initial zone configuration, waiting for gateway events", "err", err)
		return nil
	}
	t.ApplyZoneConfiguration(doc)

	return nil
}

func (t *Teufel) Run(ctx context.Context) {
	t.logger.Debug("Teufel.Run")

	// start listening to gateway events
	eventChannel := make(chan *sse.Event)
	t.events.Subscribe(eventChannel)
	defer t.events.Unsubscribe()

	// push the restored state straight away
	go t.RefreshAll()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Teufel.Run: stop signal received")
			return

		case event := <-eventChannel:
			if event == nil {
				continue
			}
			t.logger.Debug("Teufel.Run: Received gateway event", "type", string(event.Event))
			if t.HandleGatewayEvent(event) {
				go t.RefreshAll()
			}
		}
	}
}

// HandleGatewayEvent applies a single gateway event and reports whether the
// topology was reconciled.
func (t *Teufel) HandleGatewayEvent(event *sse.Event) bool {
	switch string(event.Event) {

	case constants.EventZoneConfigurationChanged:
		return t.ApplyZoneConfiguration(event.Data)

	case constants.EventRendererRemoved:
		removed := models.RendererRemoved{}
		if err := json.Unmarshal(event.Data, &removed); err != nil {
			t.logger.Error("error parsing renderer removed event", "err", err)
			return false
		}
		t.HandleRendererRemoved(removed.Udn, removed.Name)
		return false

	default:
		t.logger.Debug("ignoring gateway event", "type", string(event.Event))
		return false
	}
}

// ApplyZoneConfiguration reconciles the accessories against a zone
// configuration document. Absent or malformed documents are ignored.
func (t *Teufel) ApplyZoneConfiguration(doc []byte) bool {
	if len(bytes.TrimSpace(doc)) == 0 {
		t.logger.Debug("empty zone configuration, ignoring")
		return false
	}

	cfg, err := topology.Parse(doc)
	if err != nil {
		t.logger.Error(err)
		return false
	}

	zone, err := topology.CanonicalZone(cfg)
	if err != nil {
		t.logger.Warn("zone configuration without a zone, ignoring", "err", err)
		return false
	}

	t.snapshots.Set(cfg)
	t.reconciler.SyncRooms(zone)
	t.reconciler.SyncVirtualZone(zone)
	return true
}

func (t *Teufel) HandleRendererRemoved(rendererUdn string, name string) {
	t.logger.Info("renderer removed", "name", name, "udn", rendererUdn)
	for _, acc := range t.reconciler.RemoveAccessory(rendererUdn, name) {
		if n := t.tasks.CancelOwner(acc.ID); n > 0 {
			t.logger.Debug("cancelled pending tasks of removed accessory", "name", acc.DisplayName, "count", n)
		}
	}
}

// RefreshAll pushes the current state of every accessory onto its switch.
func (t *Teufel) RefreshAll() {
	tw := concurrency.NewThrottledWorker(t.refreshThrottle,
		func(acc models.Accessory) error {
			return t.projector.Refresh(t.ctx, acc)
		},
		func(acc models.Accessory, err error) {
			t.logger.Warn("unable to refresh switch state", "name", acc.DisplayName, "err", err)
		})
	tw.Run(t.reconciler.All())
}

func (t *Teufel) Accessories() []models.Accessory {
	return t.reconciler.All()
}

func (t *Teufel) Accessory(id string) (models.Accessory, bool) {
	return t.reconciler.Get(id)
}

// SwitchState answers a switch read. known is false when the value arrives
// later as a push.
func (t *Teufel) SwitchState(id string) (on bool, known bool) {
	acc, ok := t.reconciler.Get(id)
	if !ok {
		return false, true
	}
	on, known = t.projector.GetState(t.ctx, acc)
	if !known && !acc.IsVirtualZone() {
		// rooms missing from the snapshot read as off
		return false, true
	}
	return on, known
}

// SetSwitch handles a switch write without blocking the caller.
func (t *Teufel) SetSwitch(id string, on bool) {
	go func() {
		if err := t.SetSwitchAndWait(t.ctx, id, on); err != nil {
			t.logger.Error("Something went wrong while communicating with Raumfeld / Teufel devices, maybe not reachable? Waiting for automatic UDN update...", "err", err)
		}
	}()
}

func (t *Teufel) SetSwitchAndWait(ctx context.Context, id string, on bool) error {
	// the accessory is copied here, later topology changes don't affect this command
	acc, ok := t.reconciler.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccessory, id)
	}
	return t.dispatcher.SetState(ctx, acc, on)
}
