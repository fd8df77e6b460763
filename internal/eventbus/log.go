package eventbus

import "go.uber.org/zap"

// LogEvents writes every instance lifecycle, search and value event to logger.
// The returned function unsubscribes.
func LogEvents(b EventBus, logger *zap.Logger) func() {
	unsubs := []func(){
		b.Subscribe(EventInstanceCreated, func(e DomainEvent) {
			ev := e.(InstanceCreatedEvent)
			logger.Info("instance created",
				zap.String("instance", ev.ID),
				zap.Int("left", len(ev.Value[0])),
				zap.Int("right", len(ev.Value[1])))
		}),
		b.Subscribe(EventInstanceRemoved, func(e DomainEvent) {
			logger.Info("instance removed", zap.String("instance", e.(InstanceRemovedEvent).ID))
		}),
		b.Subscribe(EventSearchChanged, func(e DomainEvent) {
			ev := e.(SearchChangedEvent)
			logger.Debug("search applied",
				zap.String("instance", ev.ID),
				zap.Stringer("side", ev.Side),
				zap.String("text", ev.Text),
				zap.Int("matches", ev.Matches))
		}),
		b.Subscribe(EventValueChanged, func(e DomainEvent) {
			ev := e.(ValueChangedEvent)
			logger.Info("items moved",
				zap.String("instance", ev.ID),
				zap.Stringer("from", ev.From),
				zap.Strings("values", ev.Moved),
				zap.Bool("all", ev.All))
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
