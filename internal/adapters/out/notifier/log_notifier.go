// Package notifier delivers customer notifications.
//
// LogNotifier writes the confirmation to the structured log instead of
// sending mail. It is the default until a mail provider is configured.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/ports"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) OrderCreated(ctx context.Context, msg ports.OrderConfirmation) error {
	n.logger.InfoContext(ctx, "Order confirmation sent",
		"recipient", msg.Recipient,
		"first_name", msg.FirstName,
		"order_number", msg.Number,
		"menu", msg.MenuTitle,
		"service_date", msg.ServiceDate.Format(time.DateOnly),
		"delivery_time", msg.DeliveryTime,
		"headcount", msg.Headcount,
		"total", msg.Total.StringFixed(2),
	)
	return nil
}
