package main

import (
	"os"

	"agnoctl/internal/ops"
)

func main() {
	os.Exit(ops.Main())
}
