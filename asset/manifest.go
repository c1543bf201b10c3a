package asset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Asset names one file to load and an optional alias for it.
type Asset struct {
	Path  string `yaml:"path" json:"path"`
	Alias string `yaml:"alias,omitempty" json:"alias,omitempty"`
}

// Manifest lists assets per kind.
type Manifest struct {
	Images []Asset `yaml:"images,omitempty" json:"images,omitempty"`
	Files  []Asset `yaml:"files,omitempty" json:"files,omitempty"`
}

// Result partitions a manifest by load outcome, in manifest order with
// images before files.
type Result struct {
	Success []Asset
	Fail    []Asset
}

// Load loads every asset of m concurrently. Assets with an empty path
// are skipped. Individual failures land in Result.Fail; the error is
// non-nil only when ctx is done.
func (l *Loader) Load(ctx context.Context, m Manifest) (Result, error) {
	type job struct {
		asset Asset
		load  func(ctx context.Context, a Asset) error
	}

	loadImage := func(ctx context.Context, a Asset) error {
		_, err := l.LoadImage(ctx, a.Path, a.Alias)
		return err
	}
	loadFile := func(ctx context.Context, a Asset) error {
		_, err := l.LoadFile(ctx, a.Path, a.Alias)
		return err
	}

	var jobs []job
	for _, a := range m.Images {
		if a.Path != "" {
			jobs = append(jobs, job{a, loadImage})
		}
	}
	for _, a := range m.Files {
		if a.Path != "" {
			jobs = append(jobs, job{a, loadFile})
		}
	}

	ok := make([]bool, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, j := range jobs {
		g.Go(func() error {
			ok[i] = j.load(gctx, j.asset) == nil
			return nil
		})
	}
	_ = g.Wait()

	var res Result
	for i, j := range jobs {
		if ok[i] {
			res.Success = append(res.Success, j.asset)
		} else {
			res.Fail = append(res.Fail, j.asset)
		}
	}
	return res, ctx.Err()
}
