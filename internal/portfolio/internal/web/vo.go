package web

import "github.com/internfolio/internfolio/internal/portfolio/internal/domain"

type PublishReq struct {
	TemplateID string `json:"templateId"`
}

type PublicationVO struct {
	PID         string `json:"pid"`
	TemplateID  string `json:"templateId"`
	Published   bool   `json:"published"`
	PublishedAt int64  `json:"publishedAt"`
	// URL 公开页路径，没发布过为空
	URL string `json:"url"`
}

func newPublicationVO(pub domain.Publication) PublicationVO {
	vo := PublicationVO{
		PID:         pub.PID,
		TemplateID:  pub.TemplateID,
		Published:   pub.Published,
		PublishedAt: pub.PublishedAt,
	}
	if pub.PID != "" {
		vo.URL = "/p/" + pub.PID
	}
	return vo
}
