// Command brochure generates a company brochure from the command line.
//
//	brochure generate https://www.acme.test --format pdf --output acme.pdf
//	brochure links https://www.acme.test
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(buildPipeline).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
