/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package resolver

import (
	"context"
	"fmt"
	"sort"

	"github.com/macaroni-os/jessica/pkg/loader"
	log "github.com/macaroni-os/jessica/pkg/logger"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"golang.org/x/sync/errgroup"
)

// ReadPolicy selects how a failed read completes.
type ReadPolicy int

const (
	// PropagateError turns a failed read into the error of the lookup.
	PropagateError ReadPolicy = iota
	// ErrorAsValue records a failed read in the ReadOutcome and keeps going.
	ErrorAsValue
)

// ReadOutcome is the result of a single candidate read. Found tells a
// successful read apart from a failed one.
type ReadOutcome struct {
	Path    string
	Content string
	Found   bool
	Err     error
}

// Resolver produces the raw text of partials through a Loader.
type Resolver struct {
	Loader loader.Loader
	Logger *log.JessicaLogger
}

func NewResolver(l loader.Loader) *Resolver {
	return &Resolver{
		Loader: l,
		Logger: log.GetDefaultLogger(),
	}
}

func (r *Resolver) SetLogger(l *log.JessicaLogger) { r.Logger = l }

func (r *Resolver) read(ctx context.Context, path string, policy ReadPolicy) (*ReadOutcome, error) {
	content, err := r.Loader.ReadFile(ctx, path)
	if err != nil {
		if policy == PropagateError {
			return nil, err
		}
		return &ReadOutcome{Path: path, Err: err}, nil
	}
	return &ReadOutcome{Path: path, Content: content, Found: true}, nil
}

// Resolve returns the content of the partial identified by locator.
//
// Without view settings, or when the locator already ends with the view
// extension, the locator is read as a path. With a single view directory
// the read failure is returned. With a search list every candidate is read
// concurrently and the first one found in list order wins; found is false
// when no candidate could be read and err is nil in that case.
func (r *Resolver) Resolve(ctx context.Context, locator string,
	settings *specs.ViewSettings) (content string, found bool, err error) {

	candidates := settings.GetCandidates(locator)

	if !settings.IsSearch() || settings.IsFileRef(locator) {
		outcome, err := r.read(ctx, candidates[0], PropagateError)
		if err != nil {
			return "", false, err
		}
		return outcome.Content, true, nil
	}

	outcomes, err := r.Search(ctx, candidates)
	if err != nil {
		return "", false, err
	}

	for _, o := range outcomes {
		if o.Found {
			r.Logger.Debug(fmt.Sprintf(":mag:Partial %s found at %s", locator, o.Path))
			return o.Content, true, nil
		}
	}

	r.Logger.Debug(fmt.Sprintf(":mag:Partial %s not found in %v", locator, settings.Views))

	return "", false, nil
}

// Search reads every candidate concurrently. The outcomes keep the order
// of the candidates regardless of completion order.
func (r *Resolver) Search(ctx context.Context, candidates []string) ([]*ReadOutcome, error) {
	outcomes := make([]*ReadOutcome, len(candidates))

	var g errgroup.Group
	for idx := range candidates {
		g.Go(func() error {
			o, err := r.read(ctx, candidates[idx], ErrorAsValue)
			outcomes[idx] = o
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// ResolveAll resolves every partial concurrently. Partials that a search
// list could not find are missing from the returned map. The first failure
// is returned as a *ResolutionError.
func (r *Resolver) ResolveAll(ctx context.Context, partials map[string]string,
	settings *specs.ViewSettings) (map[string]string, error) {

	names := SortedNames(partials)
	contents := make([]string, len(names))
	founds := make([]bool, len(names))

	var g errgroup.Group
	for idx := range names {
		g.Go(func() error {
			locator := partials[names[idx]]
			content, found, err := r.Resolve(ctx, locator, settings)
			if err != nil {
				return &ResolutionError{Name: names[idx], Locator: locator, Err: err}
			}
			contents[idx], founds[idx] = content, found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ans := make(map[string]string, len(names))
	for idx, name := range names {
		if founds[idx] {
			ans[name] = contents[idx]
		}
	}

	return ans, nil
}

// SortedNames returns the partial names in declaration order.
func SortedNames(partials map[string]string) []string {
	names := make([]string, 0, len(partials))
	for name := range partials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
