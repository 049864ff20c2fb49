package renderer

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// RowRange is a contiguous band of image rows [Start, End), row 0 at the top
type RowRange struct {
	Start int
	End   int
}

// Rows returns the number of rows in the range
func (r RowRange) Rows() int {
	return r.End - r.Start
}

// DefaultWorkerCount returns the number of logical CPUs, falling back to
// runtime.NumCPU when the host cannot be queried
func DefaultWorkerCount() int {
	if count, err := cpu.Counts(true); err == nil && count > 0 {
		return count
	}
	return runtime.NumCPU()
}

// PartitionRows splits height rows into workers contiguous ranges of
// height/workers rows each; the last range also takes the remainder.
// The worker count is clamped to [1, height].
func PartitionRows(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	rowsPerWorker := height / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * rowsPerWorker, End: (i + 1) * rowsPerWorker}
	}
	ranges[workers-1].End = height
	return ranges
}

// rowWorker renders one row range into its own buffer.
// Nothing it writes is shared with other workers.
type rowWorker struct {
	ID      int
	rows    RowRange
	sampler core.Sampler
	pixels  []core.Vec3 // averaged linear color, row-major within the range
	stats   geometry.TraversalStats
}

func newRowWorker(id int, rows RowRange, width int, seed int64) *rowWorker {
	return &rowWorker{
		ID:      id,
		rows:    rows,
		sampler: core.NewSeededSampler(seed + int64(id)),
		pixels:  make([]core.Vec3, rows.Rows()*width),
	}
}

// run renders every pixel of the worker's rows, counting finished rows in completed.
// A panic while shading is returned as an error naming the pixel.
func (w *rowWorker) run(rt *Raytracer, completed *atomic.Int64) (err error) {
	row, col := w.rows.Start, 0
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d: panic at pixel (%d, %d): %v", w.ID, col, row, r)
		}
	}()

	width := rt.config.Width
	for ; row < w.rows.End; row++ {
		offset := (row - w.rows.Start) * width
		for col = 0; col < width; col++ {
			w.pixels[offset+col] = rt.samplePixel(col, row, w.sampler, &w.stats)
		}
		rt.reportProgress(completed.Add(1))
	}
	return nil
}
