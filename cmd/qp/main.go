package main

import (
	"qpack/cmd/qp/cmd"
)

func main() {
	cmd.Execute()
}
