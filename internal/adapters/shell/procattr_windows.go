//go:build windows

package shell

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysProcAttr keeps probe processes from flashing a console window.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
