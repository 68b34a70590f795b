package merger

import (
	"errors"

	"github.com/buildbuildio/gqlconfig/config"
)

// RightBiasMergerFunc folds inputs left to right: later documents override
// scalar options and same-named fields, definitions are unioned.
type RightBiasMergerFunc func(inputs []*MergeInput) (*MergeResult, error)

func (RightBiasMergerFunc) Merge(inputs []*MergeInput) (*MergeResult, error) {
	if len(inputs) == 0 {
		return nil, errors.New("nothing to merge")
	}

	res := &MergeResult{Config: config.NewConfig()}
	for _, input := range inputs {
		res.Config = res.Config.Merge(input.Config)
		res.Sources = append(res.Sources, input.Source)
	}

	return res, nil
}
