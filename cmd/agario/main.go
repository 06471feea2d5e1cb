package main

import (
	"fmt"
	"os"

	"agario/internal/app"
	"agario/internal/config"
)

func main() {
	opts, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	app.RunDesktop(opts)
}
