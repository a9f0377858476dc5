// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command flagctl explores the flag dataset offline, without the HTTP server.
package main

import (
	"os"

	"github.com/taibuivan/flagdex/cmd/flagctl/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
