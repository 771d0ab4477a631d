// Command krkit validates, masks and formats Korean registration numbers and
// phone numbers from the command line.
//
//	krkit check 8804151234563
//	krkit mask --type 2 880415-1234563
//	krkit phone 01043219876
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/krkit/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "krkit: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
