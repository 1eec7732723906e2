package engine

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

// ProcessLoad returns a probe of this process's CPU usage. A busy-waiting
// loop is expected to hold one core at close to 100%.
func ProcessLoad() (probe func() (float64, error), err error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	probe = proc.CPUPercent
	return
}
