// Package metrics собирает системные метрики процесса и хоста.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultCollectInterval = 15 * time.Second

var (
	HostCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swiftrider_host_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	HostMemoryUsed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swiftrider_host_memory_used_bytes",
		Help: "Host memory in use",
	})

	HostLoad1 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swiftrider_host_load1",
		Help: "Host load average over one minute",
	})

	HeapAlloc = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swiftrider_heap_alloc_bytes",
		Help: "Go heap allocation of the process",
	})

	Goroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swiftrider_goroutines",
		Help: "Number of live goroutines",
	})
)

// StartCollector обновляет метрики раз в interval, пока ctx не отменен.
func StartCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			Collect(ctx)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Collect снимает значения один раз. Ошибки gopsutil пропускаются, gauge сохраняет прошлое значение.
func Collect(ctx context.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	HeapAlloc.Set(float64(m.HeapAlloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))

	// интервал 0 - разница с прошлым вызовом, без блокировки
	if percent, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percent) > 0 {
		HostCPUUsage.Set(percent[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		HostMemoryUsed.Set(float64(vm.Used))
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		HostLoad1.Set(avg.Load1)
	}
}
