package RBF1D

import (
	"fmt"
	"sync"

	"github.com/notargets/rbfspline/utils"
)

// FitBatch fits len(centers) independent splines, spread over parallelDegree
// goroutines (runtime.NumCPU() when parallelDegree <= 0). splines[k] is nil
// exactly when errs[k] is non-nil.
func FitBatch(centers, samples [][]float64, parallelDegree int, opts ...Option) (splines []*Spline, errs []error) {
	var (
		K  = len(centers)
		wg = sync.WaitGroup{}
	)
	if len(samples) != K {
		panic(fmt.Sprintf("FitBatch: %d center sets and %d sample sets", K, len(samples)))
	}
	splines = make([]*Spline, K)
	errs = make([]error, K)
	if K == 0 {
		return
	}
	pm := utils.NewPartitionMap(parallelDegree, K)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				splines[k], errs[k] = NewSpline(centers[k], samples[k], opts...)
			}
		}(np)
	}
	wg.Wait()
	return
}

// FirstError returns the first non-nil error of a batch, annotated with its index.
func FirstError(errs []error) error {
	for k, err := range errs {
		if err != nil {
			return fmt.Errorf("spline %d: %w", k, err)
		}
	}
	return nil
}
