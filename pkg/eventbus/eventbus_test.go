package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

func TestPublishIsSynchronous(t *testing.T) {
	bus := New(zap.NewNop())

	var calls []string
	bus.Subscribe("ping", func(ctx context.Context, _ Event) error {
		calls = append(calls, "first")
		return errors.New("falhou")
	})
	bus.Subscribe("ping", func(ctx context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})

	assert.Equal(t, []string{"first", "second"}, calls, "erro de um ouvinte não interrompe os demais")
}

func TestPublishSurvivesCanceledContext(t *testing.T) {
	bus := New(zap.NewNop())

	var listenerErr error
	bus.Subscribe("ping", func(ctx context.Context, _ Event) error {
		listenerErr = ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pingEvent{})

	assert.NoError(t, listenerErr)
}
