package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/NMTSolutions/NMT-Website-Redesigned/config"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/backend"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/notify"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/store"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/uploads"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/workflow"
)

// noticeNodeID seeds the snowflake node used for notice correlation
// ids. A single front-end instance serves one editor, so a fixed node
// is enough.
const noticeNodeID int64 = 1

type Application struct {
	appConfig *config.AppConfig
	sched     *cron.Cron
	startedAt time.Time

	products *store.ProductStore
	bus      *notify.Bus
	content  *domain.SiteContent

	backendClient backend.Client
	uploadService uploads.Service
	flow          *workflow.Workflow
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ ContentProvider   = (*Application)(nil)
	_ WorkflowProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.ProductStore {
	return a.products
}

func (a *Application) Bus() *notify.Bus {
	return a.bus
}

func (a *Application) Content() *domain.SiteContent {
	return a.content
}

func (a *Application) Workflow() *workflow.Workflow {
	return a.flow
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// StartedAt reports when Init completed, used by the status endpoint.
func (a *Application) StartedAt() time.Time {
	return a.startedAt
}

// OverrideClients replaces the remote collaborators (used in tests).
func (a *Application) OverrideClients(client backend.Client, svc uploads.Service) {
	a.backendClient = client
	a.uploadService = svc
	a.flow = workflow.New(client, uploads.NewCoordinator(svc), a.products, a.bus)
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)
	a.startedAt = time.Now()

	// Site content: a missing file falls back to the built-in defaults
	// so the shell endpoints always answer.
	content, err := domain.LoadSiteContent(cfg.Site.ContentFile)
	if err != nil {
		zap.S().Warnf("site content unavailable, using defaults: %v", err)
		defaults := domain.DefaultSiteContent
		content = &defaults
	}
	a.content = content

	a.products = store.NewProductStore()

	a.bus, err = notify.NewBus(noticeNodeID)
	if err != nil {
		return err
	}

	a.backendClient, err = backend.NewHTTPClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.Timeout)*time.Second)
	if err != nil {
		return err
	}

	a.uploadService, err = uploads.NewHTTPService(cfg.Uploads.BaseURL, time.Duration(cfg.Uploads.Timeout)*time.Second, nil)
	if err != nil {
		return err
	}

	a.flow = workflow.New(a.backendClient, uploads.NewCoordinator(a.uploadService), a.products, a.bus)

	// Hydrate the store off the startup path; the backend may not be
	// reachable yet and the refresh job retries anyway.
	go a.hydrateStore()

	a.initJob()
	return nil
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) hydrateStore() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.appConfig.Backend.Timeout)*time.Second)
	defer cancel()

	if err := a.flow.Refresh(ctx); err != nil {
		zap.S().Warnf("initial product hydration failed: %v", err)
		return
	}
	zap.S().Infof("product store hydrated, count: %d", a.products.Len())
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
