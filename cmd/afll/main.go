// Command afll tokenizes and parses programs written in the afll language.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hrithik-sp/afll/internal/logger"
)

// Version information
const Version = "0.2.0"

func main() {
	err := newRootCmd().Execute()
	logger.Close()
	if err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "afll: %v\n", err)
		}
		os.Exit(1)
	}
}
