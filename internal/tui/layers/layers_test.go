package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))

	layer := CreateCenteredLayer("abcd\nefgh", 80, 24)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 38, layer.GetX())
		assert.Equal(t, 11, layer.GetY())
	}
}

func TestCreateCenteredLayer_ClampsToOrigin(t *testing.T) {
	layer := CreateCenteredLayer("a very long line of content", 10, 1)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 0, layer.GetX())
		assert.Equal(t, 0, layer.GetY())
	}
}

func TestCreateRightLayer(t *testing.T) {
	layer := CreateRightLayer("abc", 80, 2)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 76, layer.GetX())
		assert.Equal(t, 2, layer.GetY())
	}
}

func TestModalAndDrawerWidth(t *testing.T) {
	assert.Equal(t, 60, ModalWidth(120))
	assert.Equal(t, ModalMinWidth, ModalWidth(60))
	assert.Equal(t, 30, ModalWidth(30))
	assert.Equal(t, 40, DrawerWidth(120))
	assert.Equal(t, DrawerMinWidth, DrawerWidth(60))
}
