package mode_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staticmode/mode"
)

// TestConcurrentUse exercises composition, validation and lookup from many
// goroutines at once; run with -race to detect shared-state writes.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	const workers = 32
	shared := mode.Must(mode.Combine(dashed, circles))
	contract := mode.NewContract("DrawLine", drawing)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			line := LineStyles.Modes()[i%LineStyles.Len()]
			end := EndStyles.Modes()[i%EndStyles.Len()]

			set, err := mode.Combine(line, end)
			if err != nil {
				errs <- err
				return
			}
			if err := contract.Check(set); err != nil {
				errs <- err
				return
			}
			if mode.Resolve(set, solid) != line || mode.Resolve(shared, noEnds) != circles {
				errs <- mode.ErrSpecification
				return
			}
			_ = set.String()
			_ = mode.KindOf[LineStyle]().String()
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
