package service

import (
	"sync"
)

// vendaLocks serializa as operações sobre uma mesma venda. O recálculo
// de totais não é seguro sob concorrência, então cada venda tem um
// único escritor por vez dentro do processo.
type vendaLocks struct {
	mu    sync.Mutex
	locks map[string]*vendaLock
}

type vendaLock struct {
	mu   sync.Mutex
	refs int
}

func newVendaLocks() *vendaLocks {
	return &vendaLocks{
		locks: make(map[string]*vendaLock),
	}
}

// lock adquire o bloqueio da venda e retorna a função que o libera.
// A entrada do mapa é removida quando o último interessado libera.
func (l *vendaLocks) lock(vendaID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[vendaID]
	if !ok {
		entry = &vendaLock{}
		l.locks[vendaID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, vendaID)
		}
		l.mu.Unlock()
	}
}
