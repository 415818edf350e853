package loop

import "time"

// Session tuning constants.
// All loop-level parameters are centralized here for easy adjustment.

// Timing
const (
	tickRate = 30
	tickTime = time.Second / tickRate
)

// blinkPeriodMillis drives prompt blinking on menu and break screens.
const blinkPeriodMillis = 600

// Menu layout (1-based screen rows/columns, matching the classic
// top-left anchored look).
const (
	menuTitleCol = 5
	menuTitleRow = 3
	menuItemCol  = 13
	menuHintCol  = 9
)

// Info screen layout.
const (
	infoTitleCol = 5
	infoTitleRow = 3
	infoBodyCol  = 7
)
