package main

import (
	"os"

	"github.com/schemalens/schemalens/pkg/schemalens"
)

func main() {
	os.Exit(schemalens.Execute())
}
