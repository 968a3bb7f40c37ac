package store

import "sync"

// KeyedMutex serializes work per session key. Interactions on the same key
// run one at a time; different keys never contend.
type KeyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

func (k *KeyedMutex) Lock(key string) {
	m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	m.(*sync.Mutex).Lock()
}

func (k *KeyedMutex) Unlock(key string) {
	if m, ok := k.locks.Load(key); ok {
		m.(*sync.Mutex).Unlock()
	}
}
