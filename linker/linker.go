package linker

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/buildbuildio/gqlconfig/cfgerrors"
	"github.com/buildbuildio/gqlconfig/common"
	"github.com/buildbuildio/gqlconfig/config"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const defaultMaxDepth = 10

// Extension is a non-config linked document (Protobuf, Script, Cert, Key)
// fetched verbatim and carried alongside the merged config.
type Extension struct {
	Link *config.Link
	Data []byte
}

// Result is a fully linked config: every @link of type Config resolved and
// merged in, every other link fetched as an extension.
type Result struct {
	Config     *config.Config
	Extensions []*Extension
}

// Linker resolves @link imports recursively. Linked configs merge under the
// linking document, so the document that declares the link wins on conflict.
type Linker struct {
	reader   SourceReader
	logger   *zap.Logger
	maxDepth int
}

func New() *Linker {
	return &Linker{
		reader:   NewSchemeReader(),
		logger:   zap.NewNop(),
		maxDepth: defaultMaxDepth,
	}
}

// WithReader sets the reader used to fetch linked documents
func (l *Linker) WithReader(r SourceReader) *Linker {
	l.reader = r
	return l
}

// WithLogger sets the logger used during resolution
func (l *Linker) WithLogger(logger *zap.Logger) *Linker {
	l.logger = logger
	return l
}

// WithMaxDepth caps the depth of recursive link resolution
func (l *Linker) WithMaxDepth(depth int) *Linker {
	l.maxDepth = depth
	return l
}

// Resolve reads the document at src, recursively resolves its links and
// returns the merged result.
func (l *Linker) Resolve(ctx context.Context, src string) (*Result, error) {
	run := &resolveRun{
		linker:  l,
		visited: map[string]struct{}{},
	}
	run.markVisited(src)

	cfg, err := run.resolve(ctx, src, 0)
	if err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Extensions: run.extensions}, nil
}

type resolveRun struct {
	linker *Linker

	mu         sync.Mutex
	visited    map[string]struct{}
	extensions []*Extension
}

func (r *resolveRun) resolve(ctx context.Context, src string, depth int) (*config.Config, error) {
	if depth > r.linker.maxDepth {
		return nil, cfgerrors.NewError(
			cfgerrors.LinkError,
			fmt.Errorf("link depth exceeds %d at %s", r.linker.maxDepth, src),
		)
	}

	r.linker.logger.Debug("resolving document", zap.String("src", src), zap.Int("depth", depth))

	cfg, err := r.readConfig(ctx, src)
	if err != nil {
		return nil, err
	}

	// cycle protection applies to recursive config links only; extensions
	// are fetched per link so the same src may back several ids
	links := lo.Filter(cfg.Links, func(l *config.Link, _ int) bool {
		if !l.IsConfig() {
			return true
		}
		return !r.markVisited(resolveSrc(src, l.Src))
	})
	if len(links) == 0 {
		return cfg, nil
	}

	type inner struct {
		cfg   *config.Config
		index int
	}

	var acc []*inner
	res, errs := common.AsyncMapReduce(lo.Range(len(links)), acc, func(i int) (*inner, error) {
		link := links[i]
		target := resolveSrc(src, link.Src)

		if !link.IsConfig() {
			data, err := r.linker.reader.Read(ctx, target)
			if err != nil {
				return nil, cfgerrors.NewError(cfgerrors.LinkError, err).WithSource(target)
			}
			r.addExtension(&Extension{Link: link, Data: data})
			return &inner{index: i}, nil
		}

		linked, err := r.resolve(ctx, target, depth+1)
		if err != nil {
			return nil, err
		}
		return &inner{cfg: linked, index: i}, nil
	}, func(acc []*inner, value *inner) []*inner {
		return append(acc, value)
	})
	if errs != nil {
		return nil, errs
	}

	slices.SortStableFunc(res, func(a, b *inner) bool {
		return a.index < b.index
	})

	// linked configs first, the linking document last so it wins
	merged := config.NewConfig()
	for _, in := range res {
		if in.cfg == nil {
			continue
		}
		in.cfg.Links = nil
		merged = merged.Merge(in.cfg)
	}
	return merged.Merge(cfg), nil
}

func (r *resolveRun) readConfig(ctx context.Context, src string) (*config.Config, error) {
	data, err := r.linker.reader.Read(ctx, src)
	if err != nil {
		return nil, cfgerrors.NewError(cfgerrors.LinkError, err).WithSource(src)
	}

	format, err := config.DetectFormat(src)
	if err != nil {
		return nil, cfgerrors.NewError(cfgerrors.DecodeError, err).WithSource(src)
	}

	cfg, err := config.Decode(data, format, src)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *resolveRun) markVisited(src string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.visited[src]; ok {
		return true
	}
	r.visited[src] = struct{}{}
	return false
}

func (r *resolveRun) addExtension(e *Extension) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extensions = append(r.extensions, e)
}

// resolveSrc makes a link source absolute relative to the linking document.
func resolveSrc(parent, src string) string {
	if isRemote(src) {
		return src
	}
	if isRemote(parent) {
		base, err := url.Parse(parent)
		if err != nil {
			return src
		}
		ref, err := url.Parse(src)
		if err != nil {
			return src
		}
		return base.ResolveReference(ref).String()
	}
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(filepath.Dir(parent), src)
}
