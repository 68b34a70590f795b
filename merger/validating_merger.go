package merger

// ValidatingMergerFunc merges with right bias and then validates the result,
// so dangling references introduced by the merge surface immediately.
type ValidatingMergerFunc func(inputs []*MergeInput) (*MergeResult, error)

func (ValidatingMergerFunc) Merge(inputs []*MergeInput) (*MergeResult, error) {
	var mf RightBiasMergerFunc
	res, err := mf.Merge(inputs)
	if err != nil {
		return nil, err
	}

	if err := res.Config.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
