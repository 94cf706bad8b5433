package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Println(`framecast

Usage:
  framecast run <config.yml>   start the ingestion service
  framecast version            print the version
  framecast help               show this message`) //nolint
}
