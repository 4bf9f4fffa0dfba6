package teufel_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/mab2k/homebridge-teufel/internal/teufel"
	"github.com/mab2k/homebridge-teufel/mocks"
	sse "github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const zoneConfig = `<zoneConfig>
  <zones>
    <zone udn="Z1">
      <room name="Kitchen" udn="R1" powerState="ACTIVE">
        <renderer udn="D1" name="Kitchen"/>
      </room>
    </zone>
  </zones>
</zoneConfig>`

var kitchen = models.Accessory{
	ID:          "kitchen-id",
	DisplayName: "Kitchen",
	Context:     models.AccessoryContext{DeviceName: "Kitchen", DeviceUdn: "D1", RoomUdn: "R1", ZoneUdn: "Z1"},
}

var virtualZone = models.Accessory{
	ID:          "zone-id",
	DisplayName: constants.VirtualZoneName,
	Context:     models.AccessoryContext{DeviceName: constants.VirtualZoneName, DeviceUdn: "Z1", ZoneUdn: "Z1"},
}

type deps struct {
	events     *mocks.MockTeufelEventSource
	gateway    *mocks.MockTeufelZoneConfigReader
	loader     *mocks.MockTeufelAccessoryLoader
	reconciler *mocks.MockTeufelAccessoryReconciler
	snapshots  *mocks.MockTeufelSnapshotStore
	projector  *mocks.MockTeufelStateProjector
	dispatcher *mocks.MockTeufelCommandDispatcher
	tasks      *mocks.MockTeufelTaskCanceller
}

func newTeufel(t *testing.T) (*teufel.Teufel, deps) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	d := deps{
		events:     mocks.NewMockTeufelEventSource(t),
		gateway:    mocks.NewMockTeufelZoneConfigReader(t),
		loader:     mocks.NewMockTeufelAccessoryLoader(t),
		reconciler: mocks.NewMockTeufelAccessoryReconciler(t),
		snapshots:  mocks.NewMockTeufelSnapshotStore(t),
		projector:  mocks.NewMockTeufelStateProjector(t),
		dispatcher: mocks.NewMockTeufelCommandDispatcher(t),
		tasks:      mocks.NewMockTeufelTaskCanceller(t),
	}
	tf := teufel.NewTeufel(logger, d.events, d.gateway, d.loader, d.reconciler, d.snapshots, d.projector, d.dispatcher, d.tasks, time.Millisecond)
	return tf, d
}

func isZone(udn string) interface{} {
	return mock.MatchedBy(func(z *models.Zone) bool { return z != nil && z.Udn == udn })
}

func expectReconcile(d deps, udn string) {
	d.snapshots.On("Set", mock.Anything).Return().Once()
	d.reconciler.On("SyncRooms", isZone(udn)).Return().Once()
	d.reconciler.On("SyncVirtualZone", isZone(udn)).Return().Once()
}

func Test_Initialise(t *testing.T) {

	t.Run("should restore stored accessories and apply the current zone configuration", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.loader.On("GetAll").Return([]models.Accessory{kitchen, virtualZone}, nil)
		d.reconciler.On("ConfigureAccessory", kitchen).Return().Once()
		d.reconciler.On("ConfigureAccessory", virtualZone).Return().Once()
		d.gateway.On("GetZoneConfiguration", mock.Anything).Return([]byte(zoneConfig), nil)
		expectReconcile(d, "Z1")

		// act
		err := tf.Initialise(context.Background())

		// assert
		assert.NoError(t, err)
	})

	t.Run("store unreadable: should return an error", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.loader.On("GetAll").Return(nil, errors.New("database locked"))

		// act
		err := tf.Initialise(context.Background())

		// assert
		assert.ErrorContains(t, err, "database locked")
	})

	t.Run("gateway unreachable: should start with the restored accessories only", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.loader.On("GetAll").Return([]models.Accessory{kitchen}, nil)
		d.reconciler.On("ConfigureAccessory", kitchen).Return().Once()
		d.gateway.On("GetZoneConfiguration", mock.Anything).Return(nil, errors.New("connection refused"))

		// act
		err := tf.Initialise(context.Background())

		// assert
		assert.NoError(t, err)
		d.reconciler.AssertNotCalled(t, "SyncRooms", mock.Anything)
	})
}

func Test_HandleGatewayEvent(t *testing.T) {

	t.Run("zone configuration changed: should snapshot and reconcile rooms then the virtual zone", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		order := []string{}
		d.snapshots.On("Set", mock.MatchedBy(func(cfg *models.ZoneConfiguration) bool {
			return len(cfg.Zones) == 1
		})).Run(func(mock.Arguments) { order = append(order, "snapshot") }).Return().Once()
		d.reconciler.On("SyncRooms", isZone("Z1")).Run(func(mock.Arguments) { order = append(order, "rooms") }).Return().Once()
		d.reconciler.On("SyncVirtualZone", isZone("Z1")).Run(func(mock.Arguments) { order = append(order, "virtualZone") }).Return().Once()

		// act
		reconciled := tf.HandleGatewayEvent(&sse.Event{
			Event: []byte(constants.EventZoneConfigurationChanged),
			Data:  []byte(zoneConfig),
		})

		// assert
		assert.True(t, reconciled)
		assert.Equal(t, []string{"snapshot", "rooms", "virtualZone"}, order)
	})

	t.Run("empty, malformed or zoneless document: should be ignored", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		docs := []string{
			"",
			"   ",
			"<zoneConfig><zones>",
			"<zoneConfig><unassignedRooms><room name=\"Hall\" udn=\"R9\"/></unassignedRooms></zoneConfig>",
		}

		for _, doc := range docs {
			// act
			reconciled := tf.HandleGatewayEvent(&sse.Event{
				Event: []byte(constants.EventZoneConfigurationChanged),
				Data:  []byte(doc),
			})

			// assert
			assert.False(t, reconciled, doc)
		}
		d.snapshots.AssertNotCalled(t, "Set", mock.Anything)
		d.reconciler.AssertNotCalled(t, "SyncRooms", mock.Anything)
	})

	t.Run("renderer removed: should remove the accessory and cancel its pending tasks", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.reconciler.On("RemoveAccessory", "D1", "Kitchen").Return([]models.Accessory{kitchen}).Once()
		d.tasks.On("CancelOwner", "kitchen-id").Return(1).Once()

		// act
		reconciled := tf.HandleGatewayEvent(&sse.Event{
			Event: []byte(constants.EventRendererRemoved),
			Data:  []byte(`{"udn":"D1","name":"Kitchen"}`),
		})

		// assert
		assert.False(t, reconciled)
	})

	t.Run("renderer removed with a malformed payload: should be ignored", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)

		// act
		reconciled := tf.HandleGatewayEvent(&sse.Event{
			Event: []byte(constants.EventRendererRemoved),
			Data:  []byte(`{"udn":`),
		})

		// assert
		assert.False(t, reconciled)
		d.reconciler.AssertNotCalled(t, "RemoveAccessory", mock.Anything, mock.Anything)
	})

	t.Run("unknown event type: should be ignored", func(t *testing.T) {
		// arrange
		tf, _ := newTeufel(t)

		// act
		reconciled := tf.HandleGatewayEvent(&sse.Event{Event: []byte("volumeChanged"), Data: []byte("{}")})

		// assert
		assert.False(t, reconciled)
	})
}

func Test_Run(t *testing.T) {

	t.Run("should apply events until the context is cancelled", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.events.On("Subscribe", mock.Anything).Run(func(args mock.Arguments) {
			ch := args.Get(0).(chan *sse.Event)
			go func() {
				ch <- &sse.Event{Event: []byte(constants.EventZoneConfigurationChanged), Data: []byte(zoneConfig)}
			}()
		}).Return().Once()
		d.events.On("Unsubscribe").Return().Once()
		d.reconciler.On("All").Return([]models.Accessory{}).Maybe()

		reconciled := make(chan struct{})
		d.snapshots.On("Set", mock.Anything).Return().Once()
		d.reconciler.On("SyncRooms", isZone("Z1")).Return().Once()
		d.reconciler.On("SyncVirtualZone", isZone("Z1")).Run(func(mock.Arguments) { close(reconciled) }).Return().Once()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		// act
		go func() {
			tf.Run(ctx)
			close(done)
		}()

		// assert
		select {
		case <-reconciled:
		case <-time.After(time.Second):
			t.Fatal("zone configuration event was not applied")
		}
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not stop")
		}
	})
}

func Test_RefreshAll(t *testing.T) {

	t.Run("should refresh every accessory and carry on after a failure", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.reconciler.On("All").Return([]models.Accessory{virtualZone, kitchen})
		d.projector.On("Refresh", mock.Anything, virtualZone).Return(models.ErrRendererNotFound).Once()
		d.projector.On("Refresh", mock.Anything, kitchen).Return(nil).Once()

		// act
		tf.RefreshAll()

		// assert
		d.projector.AssertNumberOfCalls(t, "Refresh", 2)
	})
}

func Test_SwitchState(t *testing.T) {

	t.Run("unknown accessory: should read as off", func(t *testing.T) {
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "gone").Return(models.Accessory{}, false)

		on, known := tf.SwitchState("gone")

		assert.False(t, on)
		assert.True(t, known)
	})

	t.Run("room without snapshot data: should read as off", func(t *testing.T) {
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "kitchen-id").Return(kitchen, true)
		d.projector.On("GetState", mock.Anything, kitchen).Return(false, false)

		on, known := tf.SwitchState("kitchen-id")

		assert.False(t, on)
		assert.True(t, known)
	})

	t.Run("active room: should read as on", func(t *testing.T) {
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "kitchen-id").Return(kitchen, true)
		d.projector.On("GetState", mock.Anything, kitchen).Return(true, true)

		on, known := tf.SwitchState("kitchen-id")

		assert.True(t, on)
		assert.True(t, known)
	})

	t.Run("virtual zone: should stay unknown until pushed", func(t *testing.T) {
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "zone-id").Return(virtualZone, true)
		d.projector.On("GetState", mock.Anything, virtualZone).Return(false, false)

		_, known := tf.SwitchState("zone-id")

		assert.False(t, known)
	})
}

func Test_SetSwitchAndWait(t *testing.T) {

	t.Run("should dispatch a copy of the accessory", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "kitchen-id").Return(kitchen, true)
		d.dispatcher.On("SetState", mock.Anything, kitchen, true).Return(nil).Once()

		// act
		err := tf.SetSwitchAndWait(context.Background(), "kitchen-id", true)

		// assert
		assert.NoError(t, err)
	})

	t.Run("unknown accessory: should return ErrUnknownAccessory", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "gone").Return(models.Accessory{}, false)

		// act
		err := tf.SetSwitchAndWait(context.Background(), "gone", false)

		// assert
		require.Error(t, err)
		assert.ErrorIs(t, err, teufel.ErrUnknownAccessory)
	})

	t.Run("dispatch failure: should be returned", func(t *testing.T) {
		// arrange
		tf, d := newTeufel(t)
		d.reconciler.On("Get", "kitchen-id").Return(kitchen, true)
		d.dispatcher.On("SetState", mock.Anything, kitchen, false).Return(errors.New("standby rejected")).Once()

		// act
		err := tf.SetSwitchAndWait(context.Background(), "kitchen-id", false)

		// assert
		assert.ErrorContains(t, err, "standby rejected")
	})
}
