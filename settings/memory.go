package settings

import (
	"context"

	"github.com/xaionaro-go/xsync"
)

// Memory is an in-memory Store, mostly for tests and embedding.
type Memory struct {
	locker xsync.RWMutex
	values map[string]bool
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	m := &Memory{
		values: make(map[string]bool, len(KnownToggles)),
	}
	for _, id := range KnownToggles {
		m.values[id] = true
	}
	return m
}

func (m *Memory) GetBool(id string) bool {
	return xsync.RDoR1(context.TODO(), &m.locker, func() bool {
		return m.values[id]
	})
}

func (m *Memory) GetSetting(id string) Setting {
	return xsync.RDoR1(context.TODO(), &m.locker, func() Setting {
		if _, ok := m.values[id]; !ok {
			return nil
		}
		return Toggle(id)
	})
}

// SetBool sets the value, registering the toggle if it was not known.
func (m *Memory) SetBool(id string, value bool) {
	m.locker.Do(context.TODO(), func() {
		m.values[id] = value
	})
}

// Delete makes the toggle unknown to the store.
func (m *Memory) Delete(id string) {
	m.locker.Do(context.TODO(), func() {
		delete(m.values, id)
	})
}
