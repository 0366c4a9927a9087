// Package concurrency 동시성 제어에 쓰이는 작은 도구들을 제공합니다.
package concurrency

import (
	"sync"
)

// KeyedMutex 키마다 독립된 락을 제공합니다. 서로 다른 키의 작업은 동시에 진행됩니다.
// 참조 카운트가 0이 된 키는 맵에서 제거되므로 키 공간이 커져도 메모리가 남지 않습니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

// acquire key의 엔트리를 가져오거나 만들고 참조 카운트를 올립니다. km.mu를 잡은 상태에서 호출해야 합니다.
func (km *KeyedMutex) acquire(key string) *keyedEntry {
	e, ok := km.locks[key]
	if !ok {
		e = &keyedEntry{}
		km.locks[key] = e
	}
	e.refs++
	return e
}

// Lock key의 락을 획득할 때까지 대기합니다.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	e := km.acquire(key)
	km.mu.Unlock()

	e.mu.Lock()
}

// TryLock key의 락을 대기 없이 시도합니다. false를 반환한 경우 Unlock을 호출하면 안 됩니다.
func (km *KeyedMutex) TryLock(key string) bool {
	km.mu.Lock()
	defer km.mu.Unlock()

	if e, ok := km.locks[key]; ok {
		if !e.mu.TryLock() {
			return false
		}
		e.refs++
		return true
	}

	km.acquire(key).mu.Lock()
	return true
}

// Unlock key의 락을 해제합니다. 잠기지 않은 key면 패닉이 발생합니다.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	defer km.mu.Unlock()

	e, ok := km.locks[key]
	if !ok {
		panic("concurrency: 잠기지 않은 키의 잠금 해제 시도: " + key)
	}

	e.mu.Unlock()

	e.refs--
	if e.refs <= 0 {
		delete(km.locks, key)
	}
}

// Len 현재 잠겨 있거나 대기자가 있는 키의 수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()

	return len(km.locks)
}
