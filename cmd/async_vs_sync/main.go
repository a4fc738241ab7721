// Command async_vs_sync shows FILE_SYNC vs UNSTABLE write latency for each client/server placement.
package main

import (
	"os"

	"github.com/mark-i-m/zippynfs/src/app"
	"github.com/mark-i-m/zippynfs/src/dataset"
)

func main() {
	os.Exit(app.Main(dataset.NameSync))
}
