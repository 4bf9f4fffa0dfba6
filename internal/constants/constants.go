package constants

import "time"

// the singleton accessory representing the aggregate zone
const VirtualZoneName = "Virtual Zone"

// placeholders for the virtual zone's room fields, overwritten by real topology data
const VirtualZoneRoomName = "Raumfeld"
const VirtualZoneRoomUdn = "Raumfeld"

const Manufacturer = "Raumfeld / Teufel"
const RoomModel = "Raumfeld"

const PowerStateActive = "ACTIVE"
const TransportStatePlaying = "PLAYING"

// gateway events
const EventZoneConfigurationChanged = "zoneConfigurationChanged"
const EventRendererRemoved = "rendererRemoved"

// delayed task names
const TaskStatePush = "state-push"
const TaskVirtualZonePlay = "virtual-zone-play"

const DefaultStatePushDelay = time.Second
const DefaultVirtualZonePlayDelay = 3 * time.Second
const DefaultRefreshThrottle = 100 * time.Millisecond

// how long the homekit bridge waits for the accessory set to settle before restarting
const BridgeRestartDebounce = 2 * time.Second
