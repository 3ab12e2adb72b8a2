package analytics

import (
	"context"
	"sync"
)

// Session ata un ciclo de carga a la vida del dashboard montado.
//
// Mount lanza un ciclo en segundo plano con un contexto derivado; Unmount o un
// nuevo Mount cancelan el ciclo anterior. Un ciclo viejo nunca sobrescribe uno
// más nuevo (se compara la generación al terminar).
type Session struct {
	uc *DashboardUseCase

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Snapshot
	done    chan struct{}
}

// NewSession construye una sesión sin montar (Current devuelve nil).
func NewSession(uc *DashboardUseCase) *Session {
	return &Session{uc: uc}
}

// Mount inicia un ciclo de carga. Si había uno en curso se cancela y la vista
// vuelve a loading.
func (s *Session) Mount(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.current = nil
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		snap := s.uc.Load(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.current = snap
			s.cancel = nil
			cancel()
		}
	}()
}

// Unmount cancela el ciclo en curso y descarta el estado.
func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.current = nil
}

// Current devuelve la instantánea del último ciclo terminado; nil mientras carga.
func (s *Session) Current() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Wait bloquea hasta que termine el ciclo montado más reciente o se cancele ctx.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
