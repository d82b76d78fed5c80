package services

// EventPublisher publishes domain events to the message broker. A nil
// publisher disables publication; publish failures are logged, never
// propagated to the request that triggered them.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}
