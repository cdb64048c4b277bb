package outbox

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// Dispatcher barre periódicamente el outbox y entrega los eventos pendientes.
// Entrega al-menos-una-vez: cada fila se reintenta en cada barrido hasta que
// una entrega reporta éxito; el consumidor debe tolerar duplicados.
type Dispatcher struct {
	repo     repository.OutboxRepository
	sink     DeliverySink
	interval time.Duration
	log      *logger.Logger
	running  atomic.Bool
}

// NewDispatcher construye el dispatcher.
func NewDispatcher(repo repository.OutboxRepository, sink DeliverySink, interval time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{repo: repo, sink: sink, interval: interval, log: log}
}

// Start lanza el barrido periódico en una goroutine hasta que ctx se cancele.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				d.log.Info().Msg("dispatcher de outbox detenido")
				return
			case <-ticker.C:
				d.DeliverPending()
			}
		}
	}()
}

// DeliverPending ejecuta un barrido: lee todas las filas con delivered=false,
// intenta entregar cada una y la marca entregada de forma independiente.
// Single-flight: si un barrido anterior sigue corriendo, el tick se descarta
// (no se encola) para que dos barridos no entreguen la misma fila antes de
// marcar el flag. El fallo de una fila nunca aborta el resto del barrido.
func (d *Dispatcher) DeliverPending() {
	if !d.running.CompareAndSwap(false, true) {
		d.log.Debug().Msg("barrido anterior en curso, tick descartado")
		return
	}
	defer d.running.Store(false)

	events, err := d.repo.ListPending()
	if err != nil {
		d.log.Error().Err(err).Msg("listar eventos pendientes")
		return
	}
	for _, event := range events {
		if err := d.sink.Deliver(event.Type, event.Payload); err != nil {
			// Queda pendiente para el próximo barrido; solo se loguea.
			d.log.Error().Err(err).
				Str("event_id", event.EventID).
				Str("type", event.Type).
				Msg("entrega de evento fallida")
			continue
		}
		if err := d.repo.MarkDelivered(event.EventID, time.Now()); err != nil {
			// La entrega ocurrió pero el flag no quedó: la fila se
			// re-entregará en el próximo barrido (al-menos-una-vez).
			d.log.Error().Err(err).
				Str("event_id", event.EventID).
				Msg("marcar evento como entregado")
		}
	}
}
