package main

import (
	"os"

	"k8s.io/klog/v2"

	"linmap-go/demo"
)

func main() {
	defer klog.Flush()

	blocks, err := demo.DefaultBlocks()
	if err != nil {
		fail("load blocks: %v", err)
	}
	if err := demo.Run(os.Stdout, blocks); err != nil {
		fail("run: %v", err)
	}
}

func fail(format string, args ...any) {
	klog.Errorf(format, args...)
	klog.Flush()
	os.Exit(1)
}
