package identity

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"
)

// all accessory identifiers live in this namespace so they never collide with other name based uuids
var namespace = uuid.MustParse("6f1c2a9e-4b7d-5e3a-9c1f-7a2b8d4e6f10")

// reserved for the homekit bridge accessory
const bridgeAccessoryID = 1

// ForName derives the stable accessory identifier from a display name.
// Udns are not part of it, they change whenever zones are rebuilt.
func ForName(displayName string) string {
	return uuid.NewSHA1(namespace, []byte(strings.TrimSpace(displayName))).String()
}

// SameName compares two display names ignoring surrounding whitespace.
func SameName(a string, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// AccessoryID maps an identifier onto the numeric id homekit uses for an accessory.
func AccessoryID(id string) uint64 {
	u, err := uuid.Parse(id)
	if err != nil {
		u = uuid.NewSHA1(namespace, []byte(id))
	}
	n := binary.BigEndian.Uint64(u[:8])
	if n <= bridgeAccessoryID {
		n += 2
	}
	return n
}
