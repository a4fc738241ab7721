// Command scale shows total write bandwidth as the number of concurrent clients grows.
package main

import (
	"os"

	"github.com/mark-i-m/zippynfs/src/app"
	"github.com/mark-i-m/zippynfs/src/dataset"
)

func main() {
	os.Exit(app.Main(dataset.NameScale))
}
