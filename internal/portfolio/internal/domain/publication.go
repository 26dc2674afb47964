package domain

// Publication 一个用户只有一份对外作品集。
// PID 是对外链接里的不透明短 ID，发布后保持稳定，反复上下架不换
type Publication struct {
	PID        string `json:"pid"`
	Uid        int64  `json:"uid"`
	TemplateID string `json:"templateId"`
	Published  bool   `json:"published"`
	// 毫秒时间戳，未发布过为 0
	PublishedAt int64 `json:"publishedAt"`
	Utime       int64 `json:"utime"`
}
