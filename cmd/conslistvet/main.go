// Command conslistvet reports conslist values shared across goroutines.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"code.hybscloud.com/conslist/conslistvet"
)

func main() {
	singlechecker.Main(conslistvet.Analyzer)
}
