package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	if interval := a.appConfig.Backend.RefreshInterval; interval > 0 {
		spec := fmt.Sprintf("@every %ds", interval)
		_, err = a.sched.AddFunc(spec, func() {
			a.SchedRefreshProducts()
		})
		if err != nil {
			zap.S().Errorf("init job error %s", err.Error())
		}
	}

	_, err = a.sched.AddFunc("@every 5m", func() {
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedRefreshProducts re-syncs the product store with the backend.
func (a *Application) SchedRefreshProducts() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.appConfig.Backend.Timeout)*time.Second)
	defer cancel()

	if err := a.flow.Refresh(ctx); err != nil {
		zap.S().Warnf("scheduled product refresh failed: %v", err)
	}
}

// SchedSystemMonitorTask logs process resource usage at debug level.
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		zap.S().Debugf("system cpu use %.2f%%", _cpuuse[0])
	}

	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		zap.S().Debugf("system mem use %d MB", _meminfo.Used/1024/1024)
	}
}
