package main

import (
	"os"

	"github.com/oslerai/preceptor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
