package service

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/internfolio/internfolio/internal/form"
	"github.com/internfolio/internfolio/internal/portfolio/internal/cache"
	"github.com/internfolio/internfolio/internal/portfolio/internal/domain"
	"github.com/internfolio/internfolio/internal/portfolio/internal/event"
	"github.com/internfolio/internfolio/internal/portfolio/internal/repository"
	"github.com/internfolio/internfolio/internal/template"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var ErrPublicationNotFound = repository.ErrPublicationNotFound

type Service interface {
	// Publish 选定模板后上线，PID 首次发布生成，之后保持稳定
	Publish(ctx context.Context, uid int64, templateID string) (domain.Publication, error)
	Unpublish(ctx context.Context, uid int64) error
	Status(ctx context.Context, uid int64) (domain.Publication, error)
	// RenderPublic 公开页，按 PID 渲染成完整 HTML
	RenderPublic(ctx context.Context, pid string) (string, error)
}

type service struct {
	repo        repository.PortfolioRepository
	pageCache   cache.PageCache
	producer    event.PortfolioEventProducer
	templateSvc template.Service
	renderer    *template.Renderer
	formSvc     form.Service
	logger      *elog.Component
}

func NewService(repo repository.PortfolioRepository,
	pageCache cache.PageCache,
	producer event.PortfolioEventProducer,
	templateSvc template.Service,
	renderer *template.Renderer,
	formSvc form.Service) Service {
	return &service{
		repo:        repo,
		pageCache:   pageCache,
		producer:    producer,
		templateSvc: templateSvc,
		renderer:    renderer,
		formSvc:     formSvc,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Publish(ctx context.Context, uid int64, templateID string) (domain.Publication, error) {
	// 模板得是自己可见的
	if _, err := s.templateSvc.Detail(ctx, templateID, uid); err != nil {
		return domain.Publication{}, err
	}
	pub, err := s.repo.FindByUid(ctx, uid)
	switch err {
	case nil:
	case ErrPublicationNotFound:
		pub = domain.Publication{
			PID: shortuuid.New(),
			Uid: uid,
		}
	default:
		return domain.Publication{}, err
	}
	pub.TemplateID = templateID
	pub.Published = true
	if pub.PublishedAt == 0 {
		pub.PublishedAt = time.Now().UnixMilli()
	}
	if err = s.repo.Save(ctx, pub); err != nil {
		return domain.Publication{}, err
	}
	// 换了模板，旧渲染结果作废
	_ = s.pageCache.Del(ctx, pub.PID)
	s.produce(ctx, event.PortfolioEvent{
		Uid:        uid,
		PID:        pub.PID,
		TemplateID: templateID,
		Action:     event.ActionPublished,
	})
	return pub, nil
}

func (s *service) Unpublish(ctx context.Context, uid int64) error {
	pub, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return err
	}
	if err = s.repo.SetPublished(ctx, uid, false); err != nil {
		return err
	}
	_ = s.pageCache.Del(ctx, pub.PID)
	s.produce(ctx, event.PortfolioEvent{
		Uid:        uid,
		PID:        pub.PID,
		TemplateID: pub.TemplateID,
		Action:     event.ActionUnpublished,
	})
	return nil
}

func (s *service) Status(ctx context.Context, uid int64) (domain.Publication, error) {
	pub, err := s.repo.FindByUid(ctx, uid)
	if err == ErrPublicationNotFound {
		// 没发布过也算一种状态
		return domain.Publication{Uid: uid}, nil
	}
	return pub, err
}

func (s *service) RenderPublic(ctx context.Context, pid string) (string, error) {
	if html, err := s.pageCache.Get(ctx, pid); err == nil {
		return html, nil
	}
	pub, err := s.repo.FindByPid(ctx, pid)
	if err != nil {
		return "", err
	}
	if !pub.Published {
		return "", ErrPublicationNotFound
	}

	var (
		tpl      template.Template
		record   form.Record
		fellBack bool
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var terr error
		tpl, terr = s.templateSvc.Detail(ctx, pub.TemplateID, pub.Uid)
		if terr == template.ErrTemplateNotFound {
			// 模板被删了页面也不能挂，退回内置模板
			s.logger.Warn("发布的模板不存在，使用内置模板",
				elog.String("pid", pid),
				elog.String("templateId", pub.TemplateID))
			tpl, _ = template.PresetByID(template.DefaultPresetID)
			fellBack = true
			return nil
		}
		return terr
	})
	eg.Go(func() error {
		var ferr error
		record, ferr = s.formSvc.Detail(ctx, pub.Uid)
		return ferr
	})
	if err = eg.Wait(); err != nil {
		return "", err
	}

	html := s.renderer.HTML(tpl, record)
	if err = s.pageCache.Set(ctx, pid, html); err != nil {
		s.logger.Error("缓存公开页失败", elog.String("pid", pid), elog.FieldErr(err))
	}
	// 缓存未命中的真实渲染才算一次使用
	if !fellBack {
		if err = s.templateSvc.CountUsage(ctx, pub.TemplateID); err != nil {
			s.logger.Error("更新模板使用数失败",
				elog.String("templateId", pub.TemplateID), elog.FieldErr(err))
		}
	}
	return html, nil
}

func (s *service) produce(ctx context.Context, evt event.PortfolioEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		// 消息丢了不影响发布本身
		s.logger.Error("发送发布状态消息失败",
			elog.Int64("uid", evt.Uid), elog.FieldErr(err))
	}
}
