package main

import (
	"os"

	"github.com/blacktop/igpost/cmd"
	"github.com/blacktop/igpost/internal/logutil"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logutil.Errorf("%v", err)
		os.Exit(1)
	}
}
