// Package cpu exposes the CPU tensor backend.
package cpu

import "github.com/loom-ml/loom/internal/backend/cpu"

// CPUBackend executes tensor operations on the host CPU.
type CPUBackend = cpu.CPUBackend

// New returns a CPU backend.
func New() *CPUBackend { return cpu.New() }
