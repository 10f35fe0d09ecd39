// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	StartingMoney = 100
	BuyLimit      = 10  // Максимум единиц за одну покупку
	TweenDuration = 0.5 // Время полёта урожая до склада, секунды

	GridOriginX = 10.0
	GridOriginY = 40.0
	GridColumns = 5
	GridRows    = 5
	TileSize    = 64.0

	SelectorOriginX = 400.0
	SelectorOriginY = 40.0
	SelectorSpacing = 1.2 // Шаг по вертикали в размерах клетки

	StorageOriginX    = 10.0
	StorageOriginY    = 400.0
	IndicatorWidth    = 100.0
	IndicatorHeight   = 64.0
	IndicatorSpacingX = 1.4
	IndicatorSpacingY = 1.2
	QuantityBoxWidth  = 32.0

	EffectRadius = 10.0

	PauseButtonX    = ScreenWidth - 30.0
	PauseButtonY    = 20.0
	PauseButtonSize = 10.0

	FontSize   = 13 // basicfont 7x13
	HUDOffsetX = 10
	HUDOffsetY = 10
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	OutlineColor    = color.RGBA{130, 130, 130, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}

	PlotEmptyColor      = color.RGBA{0, 113, 24, 255}
	PlotEmptyHoverColor = color.RGBA{0, 181, 39, 255}

	ShopButtonColor      = color.RGBA{127, 76, 12, 255}
	QuantityBoxColor     = color.RGBA{80, 80, 80, 255}
	PauseOverlayColor    = color.RGBA{0, 0, 0, 128}
	PauseIconColor       = color.RGBA{200, 200, 200, 255}
	PlayIconColor        = color.RGBA{0, 181, 39, 255}
	HighlightFactor      = 1.3
	IndicatorShadeFactor = 0.6
	ShopHoverFactor      = 1.2
)
