package app

import (
	"github.com/robfig/cron/v3"

	"github.com/NMTSolutions/NMT-Website-Redesigned/config"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/domain"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/notify"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/store"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/workflow"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the in-memory product list
type StoreProvider interface {
	Store() *store.ProductStore
}

// BusProvider provides the notification bus
type BusProvider interface {
	Bus() *notify.Bus
}

// ContentProvider provides the marketing site content
type ContentProvider interface {
	Content() *domain.SiteContent
}

// WorkflowProvider provides the submission workflow
type WorkflowProvider interface {
	Workflow() *workflow.Workflow
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application
// context. Handlers should depend on specific providers or this
// combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	BusProvider
	ContentProvider
	WorkflowProvider
	SchedulerProvider

	Release()
}
