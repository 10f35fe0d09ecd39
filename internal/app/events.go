// internal/app/events.go
package app

import (
	"go-farm/internal/event"

	"go.uber.org/zap"
)

// GameEventListener пишет доменные события в лог на уровне debug.
type GameEventListener struct {
	logger *zap.Logger
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if ce := l.logger.Check(zap.DebugLevel, string(e.Type)); ce != nil {
		ce.Write(eventFields(e)...)
	}
}

func eventFields(e event.Event) []zap.Field {
	switch data := e.Data.(type) {
	case event.PlotPlantedData:
		return []zap.Field{zap.Uint64("plot", uint64(data.Plot)), zap.Stringer("crop", data.Crop)}
	case event.CropGrownData:
		return []zap.Field{zap.Uint64("plot", uint64(data.Plot)), zap.Stringer("crop", data.Crop)}
	case event.CropHarvestedData:
		return []zap.Field{
			zap.Uint64("plot", uint64(data.Plot)),
			zap.Uint64("effect", uint64(data.Effect)),
			zap.Stringer("crop", data.Crop),
		}
	case event.CropDepositedData:
		return []zap.Field{zap.Uint64("effect", uint64(data.Effect)), zap.Stringer("item", data.Item)}
	case event.TradeData:
		return []zap.Field{
			zap.Stringer("item", data.Item),
			zap.Int64("units", data.Units),
			zap.Int64("money", data.Money),
		}
	}
	return nil
}
