package request

import "sync"

// KV is a serialisable key/value bag shared by a request context and every
// context branched off it
type KV struct {
	mu sync.RWMutex

	Map map[interface{}]interface{}
}

func newKV() *KV {
	return &KV{Map: map[interface{}]interface{}{}}
}

func (kv *KV) store(key, val interface{}) {
	kv.mu.Lock()
	kv.Map[key] = val
	kv.mu.Unlock()
}

func (kv *KV) load(key interface{}) interface{} {
	kv.mu.RLock()
	v := kv.Map[key]
	kv.mu.RUnlock()
	return v
}

func (kv *KV) delete(key interface{}) {
	kv.mu.Lock()
	delete(kv.Map, key)
	kv.mu.Unlock()
}

// snapshot returns a shallow copy of the bag
func (kv *KV) snapshot() map[interface{}]interface{} {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	copy := make(map[interface{}]interface{}, len(kv.Map))
	for k, v := range kv.Map {
		copy[k] = v
	}
	return copy
}
