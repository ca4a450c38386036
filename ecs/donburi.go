package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FieldsData is the component payload holding an entity's store.
type FieldsData struct {
	Store *sapling.Store
}

// Fields is the Donburi component type for per-entity data stores.
var Fields = donburi.NewComponentType[FieldsData]()

// FieldChanged is published whenever a field of an entity's store changes.
type FieldChanged struct {
	Entity donburi.Entity
	Key    string
}

// FieldChangedEvent is the Donburi event type for FieldChanged. Events are
// queued; call ProcessEvents (or events.ProcessAllEvents) to deliver them.
var FieldChangedEvent = events.NewEventType[FieldChanged]()

// AddFields returns the store attached to entity, creating the Fields
// component and the store on first use. The store publishes FieldChanged
// events to world.
func AddFields(world donburi.World, entity donburi.Entity) *sapling.Store {
	entry := world.Entry(entity)
	if !entry.HasComponent(Fields) {
		entry.AddComponent(Fields)
	}
	data := Fields.Get(entry)
	if data.Store == nil {
		s := sapling.NewStore()
		s.OnChange(func(key string) {
			FieldChangedEvent.Publish(world, FieldChanged{Entity: entity, Key: key})
		})
		data.Store = s
	}
	return data.Store
}

// StoreOf returns the store attached to entry, if any.
func StoreOf(entry *donburi.Entry) (*sapling.Store, bool) {
	if entry == nil || !entry.HasComponent(Fields) {
		return nil, false
	}
	s := Fields.Get(entry).Store
	return s, s != nil
}
