// internal/system/shop.go
package system

import (
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/ledger"
	"go-farm/internal/utils"
)

// ShopAction — кнопка в нижней половине индикатора склада.
type ShopAction int

const (
	ShopNone ShopAction = iota
	ShopBuy
	ShopSell
)

func (a ShopAction) String() string {
	switch a {
	case ShopBuy:
		return "Buy"
	case ShopSell:
		return "Sell"
	}
	return ""
}

// ShopButtonRect — прямоугольник кнопки относительно индикатора w×h:
// Buy — левая нижняя четверть, Sell — правая нижняя.
func ShopButtonRect(action ShopAction, w, h float64) (x, y, bw, bh float64) {
	switch action {
	case ShopBuy:
		return 0, h * 0.5, w * 0.5, h * 0.5
	case ShopSell:
		return w * 0.5, h * 0.5, w * 0.5, h * 0.5
	}
	return 0, 0, 0, 0
}

// ShopActionAt определяет кнопку под точкой (x, y) в координатах индикатора.
func ShopActionAt(x, y, w, h float64) ShopAction {
	for _, action := range []ShopAction{ShopBuy, ShopSell} {
		bx, by, bw, bh := ShopButtonRect(action, w, h)
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return action
		}
	}
	return ShopNone
}

// FindStorageIndicatorPosition возвращает центр первого индикатора склада
// для item или ноль, если такого нет.
func FindStorageIndicatorPosition(ecs *entity.ECS, item defs.Item) utils.Vec2 {
	for _, id := range entity.SortedIDs(ecs.StorageIndicators) {
		if ecs.StorageIndicators[id].Item != item || !entity.Has(ecs.Sizes, id) {
			continue
		}
		return ResolveCenter(ecs, id)
	}
	return utils.Vec2{}
}

// ShopSystem переводит клики по кнопкам Buy/Sell в операции склада.
type ShopSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewShopSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ShopSystem {
	return &ShopSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update срабатывает на фронте нажатия. Неудачная покупка или продажа — не ошибка.
func (s *ShopSystem) Update(frame Frame, storage *ledger.Storage) {
	if !frame.Pressed {
		return
	}

	for _, id := range entity.SortedIDs(s.ecs.StorageIndicators) {
		hover, ok := s.ecs.MouseHovers[id]
		if !ok {
			continue
		}
		size, ok := s.ecs.Sizes[id]
		if !ok {
			continue
		}
		item := s.ecs.StorageIndicators[id].Item

		switch ShopActionAt(hover.X, hover.Y, size.W, size.H) {
		case ShopBuy:
			if units, spent := storage.Buy(item); units > 0 {
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.ItemBought,
					Data: event.TradeData{Item: item, Units: units, Money: spent},
				})
			}
		case ShopSell:
			if units, earned := storage.Sell(item); units > 0 {
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.ItemSold,
					Data: event.TradeData{Item: item, Units: units, Money: earned},
				})
			}
		}
	}
}
