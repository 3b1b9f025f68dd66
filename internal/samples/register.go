package samples

import (
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
)

func init() {
	bench.Register(NewBenchmarkCase(50 * time.Millisecond))
	bench.Register(&StringCase{})
}
