// Package main provides the CLI entrypoint for formbind.
//
// formbind generates message drivers for structs marked with
// //formbind:driver:
//   - gen: analyze packages and write <name>_driver_impl.go files
//   - check: report drivers that are missing or out of date
//   - watch: regenerate whenever Go sources change
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
