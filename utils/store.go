package utils

import (
	"globetrek/eventbus"
	"globetrek/storage"
)

var store storage.Store

func SetStore(s storage.Store) {
	store = s
}

func GetStore() storage.Store {
	return store
}

var bus *eventbus.Bus

func SetBus(b *eventbus.Bus) {
	bus = b
}

func GetBus() *eventbus.Bus {
	return bus
}
