package common

import (
	"sort"
	"sync"

	"github.com/buildbuildio/gqlconfig/cfgerrors"
	"github.com/samber/lo"
)

var builtinScalars = []string{"Int", "Float", "String", "Boolean", "ID", "JSON", "Date", "Empty"}

// IsScalarName reports whether name refers to a scalar known to the config
// model without a matching type definition.
func IsScalarName(name string) bool {
	return lo.Contains(builtinScalars, name)
}

// SortedKeys returns map keys in ascending order for stable iteration.
func SortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func AsyncMapReduce[T, P, A any](
	payload []T,
	acc A,
	mapFunc func(field T) (P, error),
	reduceFunc func(acc A, value P) A,
) (A, cfgerrors.ErrorList) {
	var errs cfgerrors.ErrorList
	var wg sync.WaitGroup

	wg.Add(len(payload))

	resChan := make(chan P)
	defer close(resChan)

	errChan := make(chan error)
	defer close(errChan)

	doneChan := make(chan struct{})
	defer close(doneChan)

	for _, value := range payload {
		go func(v T) {
			mapRes, err := mapFunc(v)
			if err != nil {
				errChan <- err
				return
			}
			resChan <- mapRes
		}(value)
	}

	go func() {
		for {
			select {
			case res := <-resChan:
				acc = reduceFunc(acc, res)
				wg.Done()
			case err := <-errChan:
				errs = cfgerrors.ExtendErrorList(errs, err)
				wg.Done()
			case <-doneChan:
				return
			}
		}
	}()

	wg.Wait()

	doneChan <- struct{}{}

	if len(errs) > 0 {
		return acc, errs
	}

	return acc, nil
}
