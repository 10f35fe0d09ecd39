package system

import (
	"go-farm/internal/component"
	"go-farm/internal/defs"
	"go-farm/internal/entity"
	"go-farm/internal/event"
	"go-farm/internal/types"
)

func spawnNode(ecs *entity.ECS, parent types.EntityID, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	if parent != 0 {
		ecs.Parents[id] = &component.Parent{ID: parent}
	}
	return id
}

func spawnTarget(ecs *entity.ECS, parent types.EntityID, x, y, w, h float64) types.EntityID {
	id := spawnNode(ecs, parent, x, y)
	ecs.Sizes[id] = &component.Size{W: w, H: h}
	ecs.MouseTargets[id] = &component.MouseTarget{}
	return id
}

func spawnPlot(ecs *entity.ECS, parent types.EntityID, x, y float64) types.EntityID {
	id := spawnTarget(ecs, parent, x, y, 64, 64)
	ecs.Plots[id] = &component.Plot{}
	return id
}

func spawnSelector(ecs *entity.ECS, parent types.EntityID, x, y float64, crop defs.CropType) types.EntityID {
	id := spawnTarget(ecs, parent, x, y, 64, 64)
	ecs.CropSelectors[id] = &component.CropSelector{Crop: crop}
	return id
}

func spawnIndicator(ecs *entity.ECS, parent types.EntityID, x, y float64, item defs.Item) types.EntityID {
	id := spawnTarget(ecs, parent, x, y, 100, 64)
	ecs.StorageIndicators[id] = &component.StorageIndicator{Item: item}
	return id
}

// hoverAt runs the mouse pass for a frame with the pointer at (x, y).
func hoverAt(ecs *entity.ECS, x, y float64) Frame {
	frame := Frame{MouseX: x, MouseY: y}
	NewMouseSystem(ecs).Update(frame)
	return frame
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newRecordingDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.SubscribeAll(log)
	return d, log
}
