package identity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mab2k/homebridge-teufel/internal/constants"
	"github.com/mab2k/homebridge-teufel/internal/identity"
	"github.com/stretchr/testify/assert"
)

func Test_ForName(t *testing.T) {

	t.Run("should be deterministic and a valid uuid", func(t *testing.T) {
		a := identity.ForName("Kitchen")
		b := identity.ForName("Kitchen")

		assert.Equal(t, a, b)
		_, err := uuid.Parse(a)
		assert.NoError(t, err)
	})

	t.Run("should ignore surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, identity.ForName("Kitchen"), identity.ForName(" Kitchen  "))
	})

	t.Run("different names: should not share an identifier", func(t *testing.T) {
		names := []string{"Kitchen", "Office", "Bath", constants.VirtualZoneName}
		seen := map[string]bool{}
		for _, n := range names {
			id := identity.ForName(n)
			assert.False(t, seen[id], n)
			seen[id] = true
		}
	})
}

func Test_SameName(t *testing.T) {
	assert.True(t, identity.SameName("Kitchen ", "Kitchen"))
	assert.True(t, identity.SameName("\tKitchen", "Kitchen \n"))
	assert.False(t, identity.SameName("Kitchen", "kitchen"))
}

func Test_AccessoryID(t *testing.T) {

	t.Run("should be stable and never the bridge id", func(t *testing.T) {
		id := identity.ForName("Kitchen")

		assert.Equal(t, identity.AccessoryID(id), identity.AccessoryID(id))
		assert.Greater(t, identity.AccessoryID(id), uint64(1))
		assert.NotEqual(t, identity.AccessoryID(id), identity.AccessoryID(identity.ForName("Office")))
	})

	t.Run("non uuid input: should still map to an id", func(t *testing.T) {
		assert.Greater(t, identity.AccessoryID("not-a-uuid"), uint64(1))
	})
}
