// Package hud holds the instrument readouts and the rider avatar.
// Nothing here touches the graphics backend; drawing goes through render.Canvas.
package hud

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/outrider/pkg/track"
)

var (
	ReadyColor   = track.RGB(0xFFFF00)
	BoostColor   = track.RGB(0x00FFFF)
	RevLowColor  = track.RGB(0x00FF00)
	RevMidColor  = track.RGB(0xFFFF00)
	RevHighColor = track.RGB(0xFF0000)
)

// SpeedReadout is the speedometer figure
func SpeedReadout(speed float64) string {
	return fmt.Sprintf("%d", int(math.Floor(math.Max(0, speed)/100)))
}

// OdometerReadout is the six digit odometer figure
func OdometerReadout(distance float64) string {
	return fmt.Sprintf("%06d", int(math.Floor(math.Max(0, distance)/1000)))
}

// RevRatio is how full the rev bar is, capped at one
func RevRatio(speed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, speed/maxSpeed))
}

// RevColor picks the rev bar colour for a fill ratio
func RevColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.8:
		return RevHighColor
	case ratio > 0.5:
		return RevMidColor
	default:
		return RevLowColor
	}
}

// PickupIndicator returns the label and colour of the pickup icon, if it is shown
func PickupIndicator(hasPickup, boosting bool) (string, color.RGBA, bool) {
	switch {
	case boosting:
		return "BOOST!", BoostColor, true
	case hasPickup:
		return "READY", ReadyColor, true
	default:
		return "", color.RGBA{}, false
	}
}
