package main

import (
	"fmt"
	"os"

	"github.com/astro-fusion/numerology-white-paper/pkg/server"
)

func main() {
	if err := server.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
