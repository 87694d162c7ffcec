package pty

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procRoot is the procfs mount; tests point it at a fixture tree.
var procRoot = "/proc"

// readProcCwd resolves the working directory of pid.
func readProcCwd(pid int) (string, error) {
	target := filepath.Join(procRoot, strconv.Itoa(pid), "cwd")
	cwd, err := os.Readlink(target)
	if err != nil {
		return "", fmt.Errorf("read cwd of %d: %w", pid, err)
	}
	return cwd, nil
}

// readChildPIDs lists the direct children of pid, from the task children
// file when the kernel provides it, else by scanning every process's parent.
// An empty children file means pid has no children.
func readChildPIDs(pid int) ([]int, error) {
	path := filepath.Join(procRoot, strconv.Itoa(pid), "task", strconv.Itoa(pid), "children")
	data, err := os.ReadFile(path)
	if err != nil {
		return scanChildPIDs(pid)
	}
	return parsePIDList(string(data)), nil
}

func parsePIDList(s string) []int {
	var pids []int
	for _, field := range strings.Fields(s) {
		if pid, err := strconv.Atoi(field); err == nil && pid > 0 {
			pids = append(pids, pid)
		}
	}
	return pids
}

func scanChildPIDs(parent int) ([]int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, err
	}
	var children []int
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(procRoot, entry.Name(), "stat"))
		if err != nil {
			continue
		}
		if parsePPID(string(data)) == parent {
			children = append(children, pid)
		}
	}
	return children, nil
}

// parsePPID extracts the parent pid from a /proc/<pid>/stat line:
// "pid (comm) state ppid ...". comm may hold spaces and parentheses.
func parsePPID(stat string) int {
	idx := strings.LastIndex(stat, ") ")
	if idx < 0 {
		return 0
	}
	fields := strings.Fields(stat[idx+2:])
	if len(fields) < 2 {
		return 0
	}
	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return ppid
}
