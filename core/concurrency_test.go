package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/linkalike/core"
	"github.com/stretchr/testify/assert"
)

// TestConcurrentAddEdge hammers AddEdge from many goroutines; run with -race.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers, perWorker = 8, 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				// every worker writes the same edge set, so the result is fixed
				assert.NoError(t, g.AddEdge(fmt.Sprintf("u%d", i), fmt.Sprintf("i%d", i%10), nil))
				_ = g.HasEdge(fmt.Sprintf("u%d", i), "i0")
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, perWorker, g.EdgeCount())
	assert.Equal(t, perWorker+10, g.NodeCount())
}
