// Command async_failure shows the write latency chart with and without a server failure before COMMIT.
package main

import (
	"os"

	"github.com/mark-i-m/zippynfs/src/app"
	"github.com/mark-i-m/zippynfs/src/dataset"
)

func main() {
	os.Exit(app.Main(dataset.NameFailure))
}
