package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/tabreap"
)

func main() {
	if err := tabreap.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
