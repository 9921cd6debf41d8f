// Copyright (c) 2025 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

//go:build !arm && !arm64 && !windows

package log

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// redirectStderr to the file passed in
func redirectStderr(f *os.File) error {
	if err := syscall.Dup2(int(f.Fd()), int(os.Stderr.Fd())); err != nil {
		return errors.Wrap(err, "failed to redirect stderr to file")
	}
	return nil
}
