// Package ecs attaches sapling data stores to [Donburi] entities.
//
// [AddFields] gives an entity a [sapling.Store] that widgets can bind to with
// [sapling.Bind]. Every change to the store is published as a [FieldChanged]
// event; subscribe to [FieldChangedEvent] in your ECS systems to react to it.
//
// Usage:
//
//	store := ecs.AddFields(world, player)
//	store.Set("hp", 100)
//	hp := sapling.Bind[int](store, "hp")
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
