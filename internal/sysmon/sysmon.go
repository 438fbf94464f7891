// Package sysmon provides system-wide CPU and memory usage sampling for the
// benchmark report.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64  // bytes of physical memory in use
	MemTotal   uint64  // bytes of physical memory installed
}

// Sample collects a single system-wide CPU and memory snapshot. CPU uses
// interval=0, reporting the delta since the previous call; callers that want
// a meaningful reading take one sample before the measured work and one
// after. Fields stay zero on collection errors.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsed = vmem.Used
		s.MemTotal = vmem.Total
	}
	return s
}
