package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sosyaltarif/tarifauth/cmd/tarifauth-cli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, cmd.ErrAlerted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
