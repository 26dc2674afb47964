package event

const topic = "portfolio_events"

const (
	ActionPublished   = "published"
	ActionUnpublished = "unpublished"
)

// PortfolioEvent 发布状态变更，下游做通知和统计
type PortfolioEvent struct {
	Uid        int64  `json:"uid"`
	PID        string `json:"pid"`
	TemplateID string `json:"templateId"`
	Action     string `json:"action"`
}

func (PortfolioEvent) Topic() string {
	return topic
}
