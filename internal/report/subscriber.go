package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parkconserve/park-management/internal/core/events"
)

// RegisterLoginRecorder wires the login audit trail: every successful
// login event becomes a login_logs row.
func RegisterLoginRecorder(bus *events.EventBus, svc *Service, logger *slog.Logger) {
	bus.Subscribe(events.EventTypeUserLoggedIn, func(ctx context.Context, event events.Event) error {
		e, ok := event.(*events.UserLoggedInEvent)
		if !ok {
			return fmt.Errorf("unexpected payload for %s event", events.EventTypeUserLoggedIn)
		}
		if err := svc.RecordLogin(e.Email, e.Role); err != nil {
			logger.Error("failed to record login", "error", err, "email", e.Email)
			return err
		}
		return nil
	})
}
