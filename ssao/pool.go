package ssao

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// maxBands bounds how many tasks one image submits, keeping every call well
// inside the pool queue.
const maxBands = 64

var (
	poolOnce sync.Once
	rowPool  worker.DynamicWorkerPool
)

func pool() worker.DynamicWorkerPool {
	poolOnce.Do(func() {
		rowPool = worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, 1*time.Second)
	})
	return rowPool
}

// forEachRow runs fn for every row in [0, height), split into horizontal
// bands on the worker pool, and returns once all rows are done.
func forEachRow(height int, fn func(y int)) {
	if height <= 0 {
		return
	}
	bands := min(height, maxBands)
	rowsPer := (height + bands - 1) / bands

	var wg sync.WaitGroup
	p := pool()
	for id, y0 := 0, 0; y0 < height; id, y0 = id+1, y0+rowsPer {
		lo, hi := y0, min(y0+rowsPer, height)
		wg.Add(1)
		p.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for y := lo; y < hi; y++ {
					fn(y)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
