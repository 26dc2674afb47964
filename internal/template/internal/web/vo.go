package web

import (
	"github.com/internfolio/internfolio/internal/template/internal/domain"
)

type SaveReq struct {
	Template domain.Template `json:"template"`
}

type IDReq struct {
	ID string `json:"id"`
}

type PublishReq struct {
	ID string `json:"id"`
	// false 表示下架
	Public bool `json:"public"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Templates []domain.Template `json:"templates"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
}

type LoadReq struct {
	// 为空则从空白模板开始
	TemplateID string `json:"templateId"`
}

type AddReq struct {
	ComponentID string `json:"componentId"`
	ParentID    string `json:"parentId"`
	Index       *int   `json:"index"`
}

type MoveReq struct {
	ID          string `json:"id"`
	NewParentID string `json:"newParentId"`
	Index       *int   `json:"index"`
}

type PropsReq struct {
	ID    string         `json:"id"`
	Props map[string]any `json:"props"`
}

type StylesReq struct {
	ID     string            `json:"id"`
	Styles map[string]string `json:"styles"`
}

type MappingReq struct {
	ID      string            `json:"id"`
	Mapping map[string]string `json:"mapping"`
}

type ShowIfReq struct {
	ID string `json:"id"`
	// null 表示清除条件
	Condition *domain.Condition `json:"condition"`
}

type ThemeReq struct {
	Theme domain.Theme `json:"theme"`
}

type PasteReq struct {
	ParentID string `json:"parentId"`
}
