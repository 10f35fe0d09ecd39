// internal/defs/items.go
package defs

import "image/color"

// ItemKind отличает семена от собранного урожая одной и той же культуры.
type ItemKind int

const (
	Seed ItemKind = iota
	Crop
)

// AllItemKinds — строки панели склада: сначала семена, потом урожай.
var AllItemKinds = []ItemKind{Seed, Crop}

// Item — ключ склада: пара (вид, культура).
type Item struct {
	Kind ItemKind
	Crop CropType
}

// SeedOf возвращает ключ семян культуры.
func SeedOf(c CropType) Item {
	return Item{Kind: Seed, Crop: c}
}

// CropOf возвращает ключ собранного урожая культуры.
func CropOf(c CropType) Item {
	return Item{Kind: Crop, Crop: c}
}

// Name — подпись на индикаторе склада.
func (i Item) Name() string {
	if i.Kind == Seed {
		return i.Crop.Name() + " seed"
	}
	return i.Crop.Name()
}

func (i Item) String() string {
	return i.Name()
}

// Color совпадает с цветом культуры.
func (i Item) Color() color.RGBA {
	return i.Crop.Color()
}

// Cost — цена одной единицы при покупке и продаже.
func (i Item) Cost() int64 {
	switch i {
	case SeedOf(Potato):
		return 1
	case SeedOf(Onion):
		return 8
	case CropOf(Potato):
		return 2
	case CropOf(Onion):
		return 16
	}
	return 0
}
