// internal/app/world.go
package app

import (
	"go-farm/internal/component"
	"go-farm/internal/config"
	"go-farm/internal/defs"
	"go-farm/internal/types"
)

func (g *Game) buildWorld() {
	g.GridID = g.spawnRoot(config.GridOriginX, config.GridOriginY)
	tile := component.Size{W: config.TileSize, H: config.TileSize}
	for y := 0; y < config.GridRows; y++ {
		for x := 0; x < config.GridColumns; x++ {
			id := g.spawnTarget(g.GridID, float64(x)*tile.W, float64(y)*tile.H, tile)
			g.ECS.Plots[id] = &component.Plot{State: component.PlotEmpty}
		}
	}

	g.SelectorsID = g.spawnRoot(config.SelectorOriginX, config.SelectorOriginY)
	for i, crop := range defs.AllCrops {
		id := g.spawnTarget(g.SelectorsID, 0, float64(i)*config.SelectorSpacing*tile.H, tile)
		g.ECS.CropSelectors[id] = &component.CropSelector{Crop: crop}
	}

	g.StorageID = g.spawnRoot(config.StorageOriginX, config.StorageOriginY)
	indicator := component.Size{W: config.IndicatorWidth, H: config.IndicatorHeight}
	for i, kind := range defs.AllItemKinds {
		for j, crop := range defs.AllCrops {
			id := g.spawnTarget(g.StorageID,
				float64(j)*config.IndicatorSpacingX*indicator.W,
				float64(i)*config.IndicatorSpacingY*indicator.H,
				indicator,
			)
			g.ECS.StorageIndicators[id] = &component.StorageIndicator{Item: defs.Item{Kind: kind, Crop: crop}}
		}
	}
}

func (g *Game) spawnRoot(x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	return id
}

func (g *Game) spawnTarget(parent types.EntityID, x, y float64, size component.Size) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Parents[id] = &component.Parent{ID: parent}
	g.ECS.Sizes[id] = &size
	g.ECS.MouseTargets[id] = &component.MouseTarget{}
	return id
}
