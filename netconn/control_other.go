//go:build !unix

package netconn

import "syscall"

func reuseAddrControl(_, _ string, _ syscall.RawConn) error { return nil }
