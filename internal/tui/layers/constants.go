package layers

const (
	ModalDefaultWidthDivisor = 2

	ModalMinWidth = 40
	ModalMaxWidth = 90

	// DrawerWidthDivisor sizes the outreach drawer against the screen
	DrawerWidthDivisor = 3
	DrawerMinWidth     = 36

	// NotificationMargin keeps banners off the screen edge
	NotificationMargin = 1
)
