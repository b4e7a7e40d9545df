package purchase

import (
	"context"
	"log/slog"

	"scrapshop/internal/model"
	"scrapshop/internal/webhook"
)

// Processor turns an accepted purchase request into a webhook notification.
// Each request is handled independently; nothing is stored.
type Processor struct {
	sender *webhook.Sender
	logger *slog.Logger
}

func NewProcessor(sender *webhook.Sender, logger *slog.Logger) *Processor {
	return &Processor{
		sender: sender,
		logger: logger,
	}
}

func (p *Processor) Configured() bool {
	return p.sender.Configured()
}

func (p *Processor) Process(ctx context.Context, req model.PurchaseRequest) error {
	content := webhook.PurchaseContent(req.Username, req.Item, req.Price.Value())

	if err := p.sender.Send(ctx, content); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "Purchase notification sent",
		"username", req.Username,
		"item", req.Item,
		"price", req.Price.Value(),
	)
	return nil
}
