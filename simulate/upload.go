// Package simulate stands in for a real network upload. It reports progress
// on a timer and decides success or failure from a configured probability, so
// demos and tests can exercise the full widget flow without a backend.
package simulate

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/moyoez/uploadkit-go/types"
)

const (
	DefaultDelay         = 2000 * time.Millisecond
	DefaultFailureChance = 0.1

	// progress advances by this much per tick, ten ticks per upload
	progressStep = 10
)

// Result error strings. The taxonomy is flat and string-based: everything is
// surfaced through UploadResult.Error, nothing is returned as a Go error.
const (
	ErrMsgNoFile    = "No file provided"
	ErrMsgFailed    = "Upload failed. Please try again."
	ErrMsgCancelled = "Upload cancelled"
)

// Uploader runs simulated uploads. Now and RandFloat exist so tests can pin
// the clock and the outcome draw; the zero value falls back to time.Now and
// math/rand.
type Uploader struct {
	Now       func() time.Time
	RandFloat func() float64 // uniform draw in [0,1)
}

// Default is the package-level uploader backed by ambient time and entropy.
var Default = &Uploader{}

func (u *Uploader) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u *Uploader) randFloat() float64 {
	if u.RandFloat != nil {
		return u.RandFloat()
	}
	return rand.Float64()
}

// UploadFile simulates uploading one file and blocks until the terminal
// result. It never returns a Go error: failures are reported through
// UploadResult.Error.
//
// A nil file resolves immediately with no delay. Otherwise a progress ticker
// fires every delay/10 advancing the percentage by 10 (clamped to 100) and
// invoking opts.OnProgress as a side effect; after the full delay the ticker
// is stopped, the final 100 tick is delivered, and one uniform draw against
// opts.FailureChance decides the outcome. No progress tick is ever observed
// after the terminal result.
//
// Cancelling ctx stops both timers and resolves with "Upload cancelled".
func (u *Uploader) UploadFile(ctx context.Context, file *types.SelectedFile, opts *types.UploadOptions) types.UploadResult {
	if file == nil {
		return types.UploadResult{
			Success:    false,
			Error:      ErrMsgNoFile,
			UploadedAt: u.now(),
		}
	}

	delay, chance, onProgress := normalizeOptions(opts)

	interval := delay / progressStep
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	done := time.NewTimer(delay)
	defer done.Stop()

	percent := 0
	report := func(p int) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	for {
		select {
		case <-ticker.C:
			if percent < 100 {
				percent += progressStep
				if percent > 100 {
					percent = 100
				}
				report(percent)
			}
		case <-done.C:
			// stop ticking before resolving so no progress arrives after the result
			ticker.Stop()
			if percent < 100 {
				percent = 100
				report(percent)
			}
			return u.resolve(file, chance)
		case <-ctx.Done():
			ticker.Stop()
			return types.UploadResult{
				Success:    false,
				Error:      ErrMsgCancelled,
				FileName:   file.Name,
				FileSize:   file.Size,
				FileType:   file.Type,
				UploadedAt: u.now(),
			}
		}
	}
}

// resolve draws the outcome and builds the terminal record.
func (u *Uploader) resolve(file *types.SelectedFile, chance float64) types.UploadResult {
	now := u.now()
	result := types.UploadResult{
		FileName:   file.Name,
		FileSize:   file.Size,
		FileType:   file.Type,
		UploadedAt: now,
	}
	if u.randFloat() < chance {
		result.Success = false
		result.Error = ErrMsgFailed
		return result
	}
	result.Success = true
	result.URL = buildMockURL(now, file.Name)
	return result
}

// UploadMultipleFiles runs the single-file simulator concurrently for every
// file with the same options: they share delay and failure chance but each
// gets an independent outcome draw, and every progress stream goes through
// the one shared callback, so OnProgress must tolerate concurrent calls. The
// returned slice preserves input order and is complete: one result per input,
// produced only after every upload has finished.
func (u *Uploader) UploadMultipleFiles(ctx context.Context, files []*types.SelectedFile, opts *types.UploadOptions) []types.UploadResult {
	results := make([]types.UploadResult, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file *types.SelectedFile) {
			defer wg.Done()
			results[i] = u.UploadFile(ctx, file, opts)
		}(i, file)
	}
	wg.Wait()
	return results
}

// UploadFile simulates one upload using the default uploader.
func UploadFile(ctx context.Context, file *types.SelectedFile, opts *types.UploadOptions) types.UploadResult {
	return Default.UploadFile(ctx, file, opts)
}

// UploadMultipleFiles simulates a batch upload using the default uploader.
func UploadMultipleFiles(ctx context.Context, files []*types.SelectedFile, opts *types.UploadOptions) []types.UploadResult {
	return Default.UploadMultipleFiles(ctx, files, opts)
}

func normalizeOptions(opts *types.UploadOptions) (time.Duration, float64, func(int)) {
	delay := DefaultDelay
	chance := DefaultFailureChance
	var onProgress func(int)
	if opts != nil {
		if opts.Delay > 0 {
			delay = opts.Delay
		}
		if opts.FailureChance >= 0 && opts.FailureChance <= 1 {
			chance = opts.FailureChance
		}
		onProgress = opts.OnProgress
	}
	return delay, chance, onProgress
}
