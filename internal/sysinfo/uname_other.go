//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "errors"

func uname() (unameInfo, error) {
	return unameInfo{}, errors.New("uname not supported on this platform")
}
