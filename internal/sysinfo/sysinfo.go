// internal/sysinfo/sysinfo.go
package sysinfo

import (
	"log/slog"
	"os"
	"runtime"
)

// Snapshot holds the host facts reported under "system".
type Snapshot struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	Architecture    string `json:"architecture"`
	CPUCount        int    `json:"cpu_count"`
	GoVersion       string `json:"go_version"`
}

// unameInfo is the subset of uname(2) the snapshot needs.
type unameInfo struct {
	Sysname string
	Version string
	Machine string
}

// Collector gathers host facts once. They cannot change while the process
// runs, so every Snapshot call returns the same value.
type Collector struct {
	snap Snapshot
}

func NewCollector(logger *slog.Logger) *Collector {
	return newCollector(logger, os.Hostname, uname)
}

func newCollector(logger *slog.Logger, hostname func() (string, error), un func() (unameInfo, error)) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "sysinfo")

	snap := Snapshot{
		Platform:     runtime.GOOS,
		Architecture: runtime.GOARCH,
		CPUCount:     runtime.NumCPU(),
		GoVersion:    runtime.Version(),
	}

	h, err := hostname()
	if err != nil {
		logger.Warn("hostname lookup failed", "error", err)
	} else {
		snap.Hostname = h
	}

	u, err := un()
	if err != nil {
		logger.Warn("uname lookup failed", "error", err)
	} else {
		if u.Sysname != "" {
			snap.Platform = u.Sysname
		}
		if u.Machine != "" {
			snap.Architecture = u.Machine
		}
		snap.PlatformVersion = u.Version
	}

	return &Collector{snap: snap}
}

func (c *Collector) Snapshot() Snapshot {
	return c.snap
}
