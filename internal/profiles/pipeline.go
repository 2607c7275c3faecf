// Package profiles drives the extraction pipeline and the in-memory
// operations over its result: filtering and statistics.
package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/hakim/wlankeys/internal/models"
	"github.com/hakim/wlankeys/internal/parser"
)

// ErrNotElevated is returned before any command executes when the process
// lacks the rights needed to read stored secrets. It is distinct from every
// parse outcome.
var ErrNotElevated = errors.New("administrator rights are required to read wireless profile keys")

// WlanTool is the minimal contract the pipeline needs from the external
// wireless tool. Using an interface keeps the package testable without a
// real netsh.
type WlanTool interface {
	ListProfiles(ctx context.Context) (string, error)
	ShowProfile(ctx context.Context, name string) (string, error)
}

// Pipeline runs one extraction session: list profiles, then query each one
// sequentially with exactly one external process in flight at a time.
type Pipeline struct {
	Tool   WlanTool
	Labels []parser.LabelSet

	// CheckElevation gates the run. Nil skips the check (tests).
	CheckElevation func() (bool, error)

	// OnProfileStart is called immediately before each per-profile query.
	// index is 0-based; total is the number of names to query.
	OnProfileStart func(name string, index, total int)

	// OnProfileDone is called after each per-profile query and parse.
	// err is nil when the query command succeeded.
	OnProfileDone func(name string, index, total int, err error)
}

// Result holds everything one extraction session produced.
type Result struct {
	// Profiles is the parsed collection, one entry per listed name in
	// emission order. A profile whose detail command failed still
	// appears, populated with defaults.
	Profiles []models.WifiProfile

	// Results carries the per-profile outcome including the command
	// error, if any.
	Results []models.ProfileResult

	// Failed counts profiles whose detail command failed.
	Failed int
}

// AsyncResult is the single message delivered by RunAsync.
type AsyncResult struct {
	Result *Result
	Err    error
}

// Run executes the full extraction sequentially. A failing per-profile
// command is tagged in its result and the run moves to the next name; only
// the elevation check and the initial list command are fatal.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.CheckElevation != nil {
		elevated, err := p.CheckElevation()
		if err != nil {
			return nil, fmt.Errorf("checking elevation: %w", err)
		}
		if !elevated {
			return nil, ErrNotElevated
		}
	}

	listOutput, err := p.Tool.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile enumeration failed: %w", err)
	}

	names := parser.ParseProfileList(listOutput, p.Labels)

	result := &Result{
		Profiles: make([]models.WifiProfile, 0, len(names)),
		Results:  make([]models.ProfileResult, 0, len(names)),
	}

	total := len(names)
	for i, name := range names {
		if p.OnProfileStart != nil {
			p.OnProfileStart(name, i, total)
		}

		detail, cmdErr := p.Tool.ShowProfile(ctx, name)

		// Parse whatever came back even on command failure: the
		// profile then keeps its defaults rather than aborting the run.
		profile := parser.ParseProfileDetail(detail, name, p.Labels)

		if cmdErr != nil {
			result.Failed++
		}
		result.Profiles = append(result.Profiles, profile)
		result.Results = append(result.Results, models.ProfileResult{
			Profile: profile,
			Err:     cmdErr,
		})

		if p.OnProfileDone != nil {
			p.OnProfileDone(name, i, total, cmdErr)
		}
	}

	return result, nil
}

// RunAsync runs the extraction on one background goroutine and delivers the
// single result on the returned channel. The channel is buffered so the
// worker never blocks on a slow consumer. There is no cancellation path and
// no partial-result delivery.
func (p *Pipeline) RunAsync(ctx context.Context) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		result, err := p.Run(ctx)
		ch <- AsyncResult{Result: result, Err: err}
		close(ch)
	}()
	return ch
}
