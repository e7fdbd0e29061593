package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendaLocksSerializaMesmaVenda(t *testing.T) {
	locks := newVendaLocks()

	var wg sync.WaitGroup
	contador := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("venda-1")
			defer unlock()
			contador++
		}()
	}

	wg.Wait()
	assert.Equal(t, 100, contador)
}

func TestVendaLocksLiberaEntradaAposUso(t *testing.T) {
	locks := newVendaLocks()

	unlock := locks.lock("venda-1")
	unlock()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}
