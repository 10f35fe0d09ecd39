// internal/event/types.go
package event

import (
	"go-farm/internal/defs"
	"go-farm/internal/types"
)

const (
	PlotPlanted   EventType = "PlotPlanted"   // Грядка засажена, семя списано
	CropGrown     EventType = "CropGrown"     // Рост завершён
	CropHarvested EventType = "CropHarvested" // Грядка очищена, эффект запущен
	CropDeposited EventType = "CropDeposited" // Эффект долетел, урожай зачислен
	ItemBought    EventType = "ItemBought"
	ItemSold      EventType = "ItemSold"
)

// AllTypes — все доменные события.
var AllTypes = []EventType{PlotPlanted, CropGrown, CropHarvested, CropDeposited, ItemBought, ItemSold}

type PlotPlantedData struct {
	Plot types.EntityID
	Crop defs.CropType
}

type CropGrownData struct {
	Plot types.EntityID
	Crop defs.CropType
}

type CropHarvestedData struct {
	Plot   types.EntityID
	Effect types.EntityID
	Crop   defs.CropType
}

type CropDepositedData struct {
	Effect types.EntityID
	Item   defs.Item
}

// TradeData — нагрузка ItemBought и ItemSold. Money — потрачено или получено.
type TradeData struct {
	Item  defs.Item
	Units int64
	Money int64
}
