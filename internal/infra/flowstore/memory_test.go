//go:build unit

package flowstore_test

import (
	"sync"
	"testing"

	"kost-booking/internal/infra/flowstore"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	m := flowstore.NewMemory[string, int]()

	m.Put("a", 1)
	m.Put("b", 2)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())
	assert.ElementsMatch(t, []int{1, 2}, m.Values())

	m.Delete("a")
	_, ok = m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Concurrent(t *testing.T) {
	m := flowstore.NewMemory[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Put(i, i)
			_, _ = m.Get(i)
			_ = m.Values()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
}
