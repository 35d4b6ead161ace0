package modplay

import (
	"unsafe"
)

func moduleSize(m *module) uint {
	memoryUsage := 0
	for _, inst := range m.instruments {
		memoryUsage += int(unsafe.Sizeof(inst))
		for _, s := range inst.samples {
			// Both the private copy and the source are counted.
			memoryUsage += len(s.data) * 2
		}
	}
	for _, p := range m.patterns {
		memoryUsage += int(unsafe.Sizeof(pattern{}))
		memoryUsage += len(p.events) * int(unsafe.Sizeof(patternEvent{}))
	}
	memoryUsage += len(m.patternOrder) * int(unsafe.Sizeof(&pattern{}))

	return uint(memoryUsage)
}
