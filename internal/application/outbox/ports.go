package outbox

import "encoding/json"

// DeliverySink destino de entrega de eventos (colaborador externo: broker,
// webhook, etc.). Un error deja el evento pendiente para el próximo barrido.
type DeliverySink interface {
	Deliver(eventType string, payload json.RawMessage) error
}
