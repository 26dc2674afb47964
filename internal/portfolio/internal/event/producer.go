package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type PortfolioEventProducer interface {
	Produce(ctx context.Context, evt PortfolioEvent) error
}

type portfolioEventProducer struct {
	producer mq.Producer
}

func NewPortfolioEventProducer(q mq.MQ) (PortfolioEventProducer, error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &portfolioEventProducer{producer: p}, nil
}

func (p *portfolioEventProducer) Produce(ctx context.Context, evt PortfolioEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送发布状态消息失败: %w", err)
	}
	return nil
}
