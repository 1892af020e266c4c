//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// mpv keeps its own window on Windows, no process group is needed.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
