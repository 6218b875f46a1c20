package natsbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/engineers-planet/site/internal/leads/domain"
)

type conn interface {
	Publish(subj string, data []byte) error
}

// Publisher sends created-record events to NATS on
// {prefix}.{companies|engineers|projects}.created.
type Publisher struct {
	conn   conn
	prefix string
}

// Connect opens a NATS connection.
func Connect(url string, logger *zap.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("engineers-planet-site"))
	if err != nil {
		return nil, err
	}
	logger.Info("connected to NATS", zap.String("url", nc.ConnectedUrl()))
	return nc, nil
}

func NewPublisher(nc *nats.Conn, prefix string) *Publisher {
	return newPublisher(nc, prefix)
}

func newPublisher(c conn, prefix string) *Publisher {
	if prefix == "" {
		prefix = "leads"
	}
	return &Publisher{conn: c, prefix: prefix}
}

func (p *Publisher) Publish(_ context.Context, ev domain.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(ev.Kind), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (p *Publisher) Subject(kind domain.EntityKind) string {
	return fmt.Sprintf("%s.%s.created", p.prefix, kind.Slug())
}
