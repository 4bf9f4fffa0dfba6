package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mab2k/homebridge-teufel/internal/constants"
)

type Room struct {
	Name         string
	Udn          string
	PowerState   string
	RendererUdn  string
	RendererName string
}

// the name used for the room's accessory, falling back to the room name for renderers without one
func (r Room) DisplayName() string {
	if r.RendererName != "" {
		return r.RendererName
	}
	return r.Name
}

func (r Room) IsActive() bool {
	return r.PowerState == constants.PowerStateActive
}

// a group of rooms playing in sync, backed by one virtual renderer
type Zone struct {
	Udn   string
	Rooms []Room
}

// a parsed zone configuration document
type ZoneConfiguration struct {
	Zones           []Zone
	UnassignedRooms []Room
}

// the mutable part of an accessory, refreshed on every topology change
type AccessoryContext struct {
	DeviceName string `json:"deviceName"`
	DeviceUdn  string `json:"deviceUdn"`
	RoomName   string `json:"roomName"`
	RoomUdn    string `json:"roomUdn"`
	ZoneUdn    string `json:"zoneUdn"`
}

type Accessory struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"displayName"`
	Context     AccessoryContext `json:"context"`
}

var ErrInvalidAccessory = errors.New("invalid accessory")

func NewAccessory(id string, displayName string, ctx AccessoryContext) (*Accessory, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidAccessory)
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, fmt.Errorf("%w: missing display name", ErrInvalidAccessory)
	}
	return &Accessory{ID: id, DisplayName: displayName, Context: ctx}, nil
}

func (a Accessory) IsVirtualZone() bool {
	return a.DisplayName == constants.VirtualZoneName
}

// result of a transport state query
type TransportInfo struct {
	CurrentTransportState string `json:"CurrentTransportState"`
}

func (t TransportInfo) IsPlaying() bool {
	return t.CurrentTransportState == constants.TransportStatePlaying
}

// payload of a renderer removed event
type RendererRemoved struct {
	Udn  string `json:"udn"`
	Name string `json:"name"`
}

var ErrRendererNotFound = errors.New("virtual renderer not found")

// a handle on a virtual media renderer known to the gateway
type Renderer struct {
	Udn  string `json:"udn"`
	Name string `json:"name"`
}
