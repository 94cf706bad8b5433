package commands

import (
	"os"

	"framecast/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("framecast error", "err", err.Error())
	os.Exit(1)
}
