package cmd

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// defaultWorkers returns the number of logical cores
func defaultWorkers() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		logger.Debugf("falling back to runtime core count: %v", err)
		return runtime.NumCPU()
	}
	return count
}

// logSystemInfo reports the host the render runs on
func logSystemInfo() {
	if info, err := cpu.Info(); err == nil && len(info) > 0 {
		logger.Infof("cpu: %s (%d logical cores)", info[0].ModelName, defaultWorkers())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Infof("memory: %d MB available of %d MB", vm.Available>>20, vm.Total>>20)
	}
}
