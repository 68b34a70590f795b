package merger

import (
	"github.com/buildbuildio/gqlconfig/config"
)

type MergeResult struct {
	Config *config.Config
	// Sources lists the documents folded into the result, in merge order.
	Sources []string
}

type MergeInput struct {
	Config *config.Config
	Source string
}

// Merger is an interface for structs that are capable of taking a list of config
// documents and returning something that resembles a "merge" of those documents.
type Merger interface {
	Merge([]*MergeInput) (*MergeResult, error)
}
