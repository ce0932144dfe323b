package main

import (
	"github.com/NVIDIA/gpustat/pkg/cli"
)

func main() {
	cli.Execute()
}
