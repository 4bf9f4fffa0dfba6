package topology

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/samber/lo"
)

var ErrEmptyDocument = errors.New("empty zone configuration document")
var ErrNoCanonicalZone = errors.New("zone configuration has no zone")

type zoneConfigDocument struct {
	XMLName         xml.Name      `xml:"zoneConfig"`
	Zones           []zoneElement `xml:"zones>zone"`
	UnassignedRooms []roomElement `xml:"unassignedRooms>room"`
}

type zoneElement struct {
	Udn   string        `xml:"udn,attr"`
	Rooms []roomElement `xml:"room"`
}

type roomElement struct {
	Name       string            `xml:"name,attr"`
	Udn        string            `xml:"udn,attr"`
	PowerState string            `xml:"powerState,attr"`
	Renderers  []rendererElement `xml:"renderer"`
}

type rendererElement struct {
	Udn  string `xml:"udn,attr"`
	Name string `xml:"name,attr"`
}

// Parse decodes a zone configuration document into a typed topology.
func Parse(doc []byte) (*models.ZoneConfiguration, error) {
	if len(strings.TrimSpace(string(doc))) == 0 {
		return nil, ErrEmptyDocument
	}

	var d zoneConfigDocument
	if err := xml.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("error parsing zone configuration: %w", err)
	}

	return &models.ZoneConfiguration{
		Zones: lo.Map(d.Zones, func(z zoneElement, _ int) models.Zone {
			return models.Zone{
				Udn:   z.Udn,
				Rooms: lo.Map(z.Rooms, toRoom),
			}
		}),
		UnassignedRooms: lo.Map(d.UnassignedRooms, toRoom),
	}, nil
}

func toRoom(r roomElement, _ int) models.Room {
	room := models.Room{
		Name:       strings.TrimSpace(r.Name),
		Udn:        r.Udn,
		PowerState: r.PowerState,
	}
	// a room can hold several renderers, the first one represents it
	if len(r.Renderers) > 0 {
		room.RendererUdn = r.Renderers[0].Udn
		room.RendererName = strings.TrimSpace(r.Renderers[0].Name)
	}
	return room
}

// CanonicalZone selects the zone the accessories are reconciled against.
// The policy is to always take the first zone of the document.
func CanonicalZone(cfg *models.ZoneConfiguration) (*models.Zone, error) {
	if cfg == nil || len(cfg.Zones) == 0 {
		return nil, ErrNoCanonicalZone
	}
	return &cfg.Zones[0], nil
}
