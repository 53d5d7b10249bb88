package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event representa qualquer evento do sistema.
type Event interface {
	Name() string
}

// Listener - ouvinte de eventos.
type Listener func(ctx context.Context, event Event) error

// Bus - barramento de eventos em memória.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
	timeout   time.Duration
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
		timeout:   10 * time.Second,
	}
}

// Subscribe inscreve o ouvinte no evento.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish entrega o evento a todos os ouvintes antes de retornar, para que a
// próxima leitura já veja o efeito (ex.: cache invalidado). Erros só são logados.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Name()]...)
	b.mu.RUnlock()

	for _, l := range listeners {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		if err := l(lctx, event); err != nil {
			b.logger.Error("Erro no ouvinte de evento",
				zap.String("event", event.Name()),
				zap.Error(err),
			)
		}
		cancel()
	}
}
