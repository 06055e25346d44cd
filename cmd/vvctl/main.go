// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command vvctl is the operator CLI for the VVDex Content API.
//
// It reads and edits documents and update logs through the same client-side
// stores the admin site uses, and can re-sort catalog lists locally.
//
// # Configuration
//
// VVDEX_API_URL, VVDEX_API_TOKEN, VVDEX_API_TIMEOUT and VVDEX_PAGE_LIMIT are
// read from the environment. --api-url and --token override the first two.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
