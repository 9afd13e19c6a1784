package main

import (
	"github.com/oarkflow/listingfilter/cmd/cli"
)

func main() {
	cli.Run()
}
