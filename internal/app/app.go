package app

import (
	"context"
	"fmt"

	"dixis/shipzone/internal/publish"
	"dixis/shipzone/pkg/config"
	"dixis/shipzone/pkg/infra/mysql"
	"dixis/shipzone/pkg/infra/redis"
	"dixis/shipzone/pkg/lmstfy"
	"dixis/shipzone/pkg/logger"
)

// App 生成器运行环境
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	OutputDir string

	closers []func() error
}

// New 加载并校验配置，初始化日志
func New(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	dir, err := cfg.OutputDir()
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    log,
		OutputDir: dir,
	}, nil
}

// Publisher 连接配置中启用的下游，全部未启用时返回 nil
func (a *App) Publisher(ctx context.Context) (*publish.Publisher, error) {
	var (
		store    publish.TableStore
		notifier publish.Notifier
		queue    publish.JobQueue
	)

	if a.Config.MySQL.DSN != "" {
		dao, err := mysql.NewTablesDAO(a.Config.MySQL.DSN, a.Config.MySQL.BatchSize)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, dao.Close)
		if err := dao.Migrate(ctx); err != nil {
			return nil, err
		}
		store = dao
		a.Logger.Infof(ctx, "[App] MySQL sink enabled")
	}

	if a.Config.Redis.Addr != "" {
		ps, err := redis.NewPubSub(ctx, a.Config.Redis.Addr, a.Config.Redis.Password, a.Config.Redis.DB, a.Config.Redis.Channel)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, ps.Close)
		notifier = ps
		a.Logger.Infof(ctx, "[App] Redis sink enabled, channel: %s", a.Config.Redis.Channel)
	}

	if a.Config.Lmstfy.Host != "" {
		lc := a.Config.Lmstfy
		queue = lmstfy.NewClient(lc.Host, lc.Port, lc.Namespace, lc.Token, lc.Queue)
		a.Logger.Infof(ctx, "[App] Lmstfy sink enabled, queue: %s", lc.Queue)
	}

	if store == nil && notifier == nil && queue == nil {
		return nil, nil
	}
	return publish.NewPublisher(store, notifier, queue, a.Logger), nil
}

// Close 关闭下游连接并刷新日志
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warnf(context.Background(), "[App] Close failed: %v", err)
		}
	}
	a.closers = nil
	_ = a.Logger.Sync()
}
