package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartData(t *testing.T) {
	cart := NewCartData()

	// exactement 300 emplacements, tous à zéro
	assert.Len(t, cart, CartSlots)
	for key, qty := range cart {
		assert.Equal(t, 0, qty, "emplacement %s", key)
	}

	_, first := cart["0"]
	_, last := cart["299"]
	assert.True(t, first)
	assert.True(t, last)

	_, outOfRange := cart["300"]
	assert.False(t, outOfRange)
}
