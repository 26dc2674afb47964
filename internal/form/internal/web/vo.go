package web

import (
	"github.com/internfolio/internfolio/internal/form/internal/domain"
)

type SaveReq struct {
	Record domain.Record `json:"record"`
}
