package memtable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemTable(t *testing.T) {
	m := New(16 * 1024)

	m.Set("key01", []byte("customer-01"), 0)
	m.Set("key02", []byte("customer-02"), 0)

	data, ok := m.Get("key01")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("customer-01"), data)

	data, ok = m.Get("key02")
	assert.Equal(t, true, ok)
	assert.Equal(t, []byte("customer-02"), data)

	data, ok = m.Get("key03")
	assert.Equal(t, false, ok)
	assert.Nil(t, data)
}

func TestMemTable_Delete(t *testing.T) {
	m := New(16 * 1024)

	m.Set("key01", []byte("customer-01"), 0)
	m.Delete("key01")

	_, ok := m.Get("key01")
	assert.Equal(t, false, ok)
}

func TestMemTable_Expired(t *testing.T) {
	m := New(16 * 1024)

	m.Set("key01", []byte("customer-01"), 1)
	time.Sleep(2100 * time.Millisecond)

	_, ok := m.Get("key01")
	assert.Equal(t, false, ok)
}
