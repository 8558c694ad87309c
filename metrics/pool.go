package metrics

import (
	"fmt"
	"sync"
)

// maxLabels is the largest number of labels of any metric in this package.
const maxLabels = 2

// Label value slices are pooled, so that passing labels to Prometheus doesn't allocate.
var stringPool = sync.Pool{New: func() any {
	s := make([]string, 0, maxLabels)
	return &s
}}

func getStringSlice() *[]string {
	s := stringPool.Get().(*[]string)
	*s = (*s)[:0]
	return s
}

func putStringSlice(s *[]string) {
	if c := cap(*s); c < maxLabels {
		panic(fmt.Sprintf("metrics: pooled label slice has capacity %d, need %d", c, maxLabels))
	}
	stringPool.Put(s)
}
