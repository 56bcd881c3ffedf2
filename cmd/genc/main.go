// Command genc prints values from declarative generator recipes.
//
//	genc --config recipes.yml --count 5
//	genc --config recipes.yml --recipe ids
//
// Each output line is "<recipe>\t<value>". Logs go to stderr.
package main

import (
	"context"
	"os"

	"github.com/kbukum/genc/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		logger.Error("genc failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
