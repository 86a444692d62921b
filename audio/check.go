package audio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"sync"
)

// Report is the outcome of checking one audio file.
type Report struct {
	Path       string
	OK         bool
	Samples    int
	SampleRate uint32
	Message    string
}

// Config holds parameters for batch checks.
type Config struct {
	Workers int // parallel decoders
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// Check decodes the file at path and reports whether it is usable.
func Check(path string) Report {
	rep := Report{Path: path}
	samples, h, err := ReadWAVFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		rep.Message = "File not found"
		return rep
	case err != nil:
		rep.Message = err.Error()
		return rep
	}
	rep.Samples = len(samples)
	rep.SampleRate = h.SampleRate
	if len(samples) == 0 {
		rep.Message = "Empty audio file"
		return rep
	}
	if h.SampleRate == 0 {
		rep.Message = "Invalid sample rate"
		return rep
	}
	rep.OK = true
	rep.Message = fmt.Sprintf("OK - %d samples, %d Hz", rep.Samples, rep.SampleRate)
	return rep
}

// CheckAll checks paths in parallel. Reports are returned in input order.
// Paths not started before ctx is cancelled get the context error as message.
func CheckAll(ctx context.Context, paths []string, cfg Config) []Report {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	reports := make([]Report, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			reports[i] = Report{Path: p, Message: err.Error()}
			continue
		}
		select {
		case <-ctx.Done():
			reports[i] = Report{Path: p, Message: ctx.Err().Error()}
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-sem }()
			reports[i] = Check(p)
		}(i, p)
	}
	wg.Wait()
	return reports
}
