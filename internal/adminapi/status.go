package adminapi

import (
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/webserver"
)

func registerStatusRoutes() {
	webserver.ApiGET("/status", processStatus)
}

type statusReport struct {
	UptimeSeconds int64   `json:"uptimeSeconds"`
	Products      int     `json:"products"`
	Goroutines    int     `json:"goroutines"`
	SystemCPU     float64 `json:"systemCpuPercent"`
	SystemMemUsed uint64  `json:"systemMemUsedMb"`
	ProcMemUsed   uint64  `json:"procMemUsedMb"`
}

// processStatus reports process health for the deployment probe.
// Collector failures leave the affected fields at zero rather than
// failing the probe.
func processStatus(c echo.Context) error {
	appx := GetApp(c)
	report := statusReport{
		UptimeSeconds: int64(time.Since(appx.StartedAt()) / time.Second),
		Products:      appx.Store().Len(),
		Goroutines:    runtime.NumGoroutine(),
	}

	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		report.SystemCPU = cpuuse[0]
	}
	if meminfo, err := mem.VirtualMemory(); err == nil {
		report.SystemMemUsed = meminfo.Used / 1024 / 1024
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if pmem, err := proc.MemoryInfo(); err == nil && pmem != nil {
			report.ProcMemUsed = pmem.RSS / 1024 / 1024
		}
	}
	return ok(c, report)
}
