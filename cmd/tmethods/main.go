// SPDX-License-Identifier: MIT

// Command tmethods prints initial and optimal plans for balanced
// transportation problems.
//
//	tmethods initial -f data_file.txt
//	tmethods optimal -f data_file.txt --method stepping-stone --max-iterations 500
//
// Exit status is 0 on success, 2 when the solver stops before an optimal plan
// (iteration limit, time limit, stall) and 1 on any other error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
