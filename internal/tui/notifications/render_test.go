package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hireboard/internal/notify"
)

func TestRender(t *testing.T) {
	out := Render(notify.Notification{Level: notify.LevelError, Message: "Failed to move candidate."})
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Failed to move candidate.")
}

func TestRenderStack(t *testing.T) {
	assert.Empty(t, RenderStack(nil, 3))

	ns := []notify.Notification{
		{Level: notify.LevelInfo, Message: "first"},
		{Level: notify.LevelInfo, Message: "second"},
		{Level: notify.LevelSuccess, Message: "third"},
	}
	out := RenderStack(ns, 2)
	assert.NotContains(t, out, "first")
	assert.Less(t, strings.Index(out, "third"), strings.Index(out, "second"), "newest on top")
}
