package reconciler

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/identity"
	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/samber/lo"
)

type accessoryStore interface {
	Register(acc models.Accessory) error
	Unregister(acc models.Accessory) error
	Update(acc models.Accessory) error
}

type switchAttacher interface {
	AttachSwitch(acc models.Accessory)
	DetachSwitch(acc models.Accessory)
}

// Reconciler owns the set of managed accessories and keeps it in line with
// the zone topology. Mutations happen on the engine loop only; reads may come
// from any goroutine and always get copies.
type Reconciler struct {
	logger   *log.Logger
	store    accessoryStore
	switches switchAttacher

	mu          sync.RWMutex
	accessories map[string]*models.Accessory
	// ids in the order the accessories were added
	order []string
}

func NewReconciler(logger *log.Logger, store accessoryStore, switches switchAttacher) *Reconciler {
	return &Reconciler{
		logger:      logger,
		store:       store,
		switches:    switches,
		accessories: map[string]*models.Accessory{},
	}
}

// SyncRooms creates an accessory for every room of the zone not seen before
// and refreshes the context of the ones that already exist.
func (r *Reconciler) SyncRooms(zone *models.Zone) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, room := range zone.Rooms {
		name := strings.TrimSpace(room.DisplayName())
		if name == "" {
			r.logger.Warn("room without a name, skipping", "roomUdn", room.Udn)
			continue
		}
		if identity.SameName(name, constants.VirtualZoneName) {
			r.logger.Warn("room uses the reserved virtual zone name, skipping", "roomUdn", room.Udn)
			continue
		}

		ctx := models.AccessoryContext{
			DeviceName: name,
			DeviceUdn:  room.RendererUdn,
			RoomName:   room.Name,
			RoomUdn:    room.Udn,
			ZoneUdn:    zone.Udn,
		}

		if existing := r.findRoomAccessory(name); existing != nil {
			if existing.Context != ctx {
				existing.Context = ctx
				r.persist(existing)
			}
			continue
		}

		r.logger.Infof("Found Teufel device %s, processing.", name)
		acc, err := models.NewAccessory(identity.ForName(name), name, ctx)
		if err != nil {
			r.logger.Error(err)
			continue
		}
		r.addAndRegister(acc)
	}
}

// SyncVirtualZone points the virtual zone accessory at the zone and links
// every managed accessory to it.
func (r *Reconciler) SyncVirtualZone(zone *models.Zone) {
	r.mu.Lock()
	defer r.mu.Unlock()

	virtualZone := r.findVirtualZone()
	if virtualZone != nil {
		r.logger.Info("Device removed or added, updating virtual zone UDN for all devices", "udn", zone.Udn)
		if virtualZone.Context.DeviceUdn != zone.Udn {
			virtualZone.Context.DeviceUdn = zone.Udn
			r.persist(virtualZone)
		}
	} else {
		r.logger.Info("Creating virtual zone", "udn", zone.Udn)
		acc, err := models.NewAccessory(identity.ForName(constants.VirtualZoneName), constants.VirtualZoneName, models.AccessoryContext{
			DeviceName: constants.VirtualZoneName,
			DeviceUdn:  zone.Udn,
			RoomName:   constants.VirtualZoneRoomName,
			RoomUdn:    constants.VirtualZoneRoomUdn,
			ZoneUdn:    zone.Udn,
		})
		if err != nil {
			r.logger.Error(err)
			return
		}
		r.addAndRegister(acc)
	}

	for _, id := range r.order {
		acc := r.accessories[id]
		if acc.Context.ZoneUdn == zone.Udn {
			continue
		}
		acc.Context.ZoneUdn = zone.Udn
		r.persist(acc)
	}
}

// RemoveAccessory drops every accessory whose device name matches the
// removed renderer. The removed accessories are returned.
func (r *Reconciler) RemoveAccessory(rendererUdn string, displayName string) []models.Accessory {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := []models.Accessory{}
	for _, id := range r.order {
		acc := r.accessories[id]
		if !identity.SameName(acc.Context.DeviceName, displayName) {
			continue
		}

		r.logger.Info("Going to delete device", "name", acc.Context.DeviceName, "rendererUdn", rendererUdn)
		if err := r.store.Unregister(*acc); err != nil {
			// the local entry is dropped regardless, the store catches up on the next registration
			r.logger.Error("Something went wrong deleting device", "name", acc.Context.DeviceName, "err", err)
		}
		r.switches.DetachSwitch(*acc)
		delete(r.accessories, id)
		removed = append(removed, *acc)
	}

	if len(removed) == 0 {
		r.logger.Debug("renderer removed but no accessory matches, ignoring", "name", displayName)
		return removed
	}

	r.order = lo.Filter(r.order, func(id string, _ int) bool {
		_, ok := r.accessories[id]
		return ok
	})
	return removed
}

// ConfigureAccessory adopts an accessory restored from the store at startup.
// It is not registered again.
func (r *Reconciler) ConfigureAccessory(acc models.Accessory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Info("Configure accessory", "name", acc.DisplayName)
	if _, exists := r.accessories[acc.ID]; exists {
		r.logger.Warn("accessory already configured, skipping", "name", acc.DisplayName, "id", acc.ID)
		return
	}
	if acc.IsVirtualZone() && r.findVirtualZone() != nil {
		r.logger.Warn("virtual zone already configured, skipping", "id", acc.ID)
		return
	}

	r.switches.AttachSwitch(acc)
	r.add(&acc)
}

func (r *Reconciler) Get(id string) (models.Accessory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accessories[id]
	if !ok {
		return models.Accessory{}, false
	}
	return *acc, true
}

func (r *Reconciler) All() []models.Accessory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.order, func(id string, _ int) models.Accessory {
		return *r.accessories[id]
	})
}

func (r *Reconciler) findRoomAccessory(name string) *models.Accessory {
	for _, id := range r.order {
		acc := r.accessories[id]
		if !acc.IsVirtualZone() && identity.SameName(acc.DisplayName, name) {
			return acc
		}
	}
	return nil
}

func (r *Reconciler) findVirtualZone() *models.Accessory {
	for _, id := range r.order {
		if acc := r.accessories[id]; acc.IsVirtualZone() {
			return acc
		}
	}
	return nil
}

func (r *Reconciler) add(acc *models.Accessory) {
	r.accessories[acc.ID] = acc
	r.order = append(r.order, acc.ID)
}

func (r *Reconciler) addAndRegister(acc *models.Accessory) {
	r.switches.AttachSwitch(*acc)
	r.add(acc)
	if err := r.store.Register(*acc); err != nil {
		r.logger.Error("error registering accessory", "name", acc.DisplayName, "err", err)
	}
}

func (r *Reconciler) persist(acc *models.Accessory) {
	if err := r.store.Update(*acc); err != nil {
		r.logger.Error("error updating accessory", "name", acc.DisplayName, "err", err)
	}
}
