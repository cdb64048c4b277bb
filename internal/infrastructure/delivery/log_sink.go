package delivery

import (
	"encoding/json"

	"github.com/jhoicas/fruteria-api/internal/application/outbox"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

var _ outbox.DeliverySink = (*LogSink)(nil)

// LogSink sink de entrega por defecto: registra el evento en el log
// estructurado. Sustituible por un sink real (broker, webhook) sin tocar
// el dispatcher.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink construye el sink.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

// Deliver registra el par (type, payload) como entrega del evento.
func (s *LogSink) Deliver(eventType string, payload json.RawMessage) error {
	s.log.Info().
		Str("type", eventType).
		RawJSON("payload", payload).
		Msg("evento de dominio entregado")
	return nil
}
