package bootstrap

import (
	"context"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/logging"
)

// logNotifier reports notifications through the logger when no frontend
// supplies its own Notifier.
type logNotifier struct{}

func (logNotifier) Show(ctx context.Context, message string, kind port.NotificationType) {
	log := logging.FromContext(ctx)
	switch kind {
	case port.NotificationError:
		log.Error().Msg(message)
	case port.NotificationWarning:
		log.Warn().Msg(message)
	default:
		log.Info().Str("type", kind.String()).Msg(message)
	}
}

// autoConfirmer answers every question with yes. Without a frontend nobody
// can be asked.
type autoConfirmer struct {
	post func(func())
}

func (c autoConfirmer) Confirm(ctx context.Context, req port.ConfirmRequest, answer func(bool)) {
	logging.FromContext(ctx).Info().Str("title", req.Title).Msg("no frontend to confirm, accepting")
	c.post(func() { answer(true) })
}

// logWindow drops window commands.
type logWindow struct{}

func (logWindow) Perform(ctx context.Context, cmd port.WindowCommand) error {
	logging.FromContext(ctx).Debug().Str("window_command", string(cmd)).Msg("window command without frontend")
	return nil
}
