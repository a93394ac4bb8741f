// Package layers positions overlays (modals, drawers, banners) over the board
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateRightLayer pins content to the right edge, starting at row top
func CreateRightLayer(content string, screenWidth int, top int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max(screenWidth-lipgloss.Width(content)-NotificationMargin, 0)
	return lipgloss.NewLayer(content).X(x).Y(max(top, 0))
}

// ModalWidth sizes a centered modal for the screen
func ModalWidth(screenWidth int) int {
	return min(max(screenWidth/ModalDefaultWidthDivisor, ModalMinWidth), ModalMaxWidth, screenWidth)
}

// DrawerWidth sizes the side drawer for the screen
func DrawerWidth(screenWidth int) int {
	return min(max(screenWidth/DrawerWidthDivisor, DrawerMinWidth), screenWidth)
}
