// Package metrics reports host resource usage for the health endpoint.
package metrics

import (
	"context"
	"sync"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostMetrics is a point-in-time view of the machine serving the page.
type HostMetrics struct {
	Hostname string        `json:"hostname"`
	OS       string        `json:"os"`
	Platform string        `json:"platform"`
	Uptime   uint64        `json:"uptime"` // seconds
	Memory   MemoryMetrics `json:"memory"`
	Disk     *DiskMetrics  `json:"disk,omitempty"`
	LoadAvg  []float64     `json:"load_avg,omitempty"` // 1, 5, 15 min
}

// MemoryMetrics represents memory usage information.
type MemoryMetrics struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Available   uint64  `json:"available"`
	UsedPercent float64 `json:"used_percent"`
}

// DiskMetrics is usage of the filesystem holding a path.
type DiskMetrics struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"used_percent"`
}

// Collect gathers host metrics. diskPath selects the filesystem to report;
// an empty path skips disk usage. Probes that fail are left zero.
func Collect(ctx context.Context, diskPath string) (*HostMetrics, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	m := &HostMetrics{}
	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(1)
	go func() {
		defer wg.Done()
		info, err := host.InfoWithContext(ctx)
		if err != nil {
			return
		}
		mu.Lock()
		m.Hostname = info.Hostname
		m.OS = info.OS
		m.Platform = info.Platform
		m.Uptime = info.Uptime
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return
		}
		mu.Lock()
		m.Memory = MemoryMetrics{
			Total:       vm.Total,
			Used:        vm.Used,
			Available:   vm.Available,
			UsedPercent: vm.UsedPercent,
		}
		mu.Unlock()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		avg, err := load.AvgWithContext(ctx)
		if err != nil {
			return
		}
		mu.Lock()
		m.LoadAvg = []float64{avg.Load1, avg.Load5, avg.Load15}
		mu.Unlock()
	}()

	if diskPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			usage, err := disk.UsageWithContext(ctx, diskPath)
			if err != nil {
				return
			}
			mu.Lock()
			m.Disk = &DiskMetrics{
				Path:        diskPath,
				Total:       usage.Total,
				Free:        usage.Free,
				UsedPercent: usage.UsedPercent,
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return m, nil
}
