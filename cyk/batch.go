package cyk

import (
	"context"
	"runtime"
	"sync"
)

// ParseAll parses a batch of sentences concurrently, using a pool of
// workers. Each sentence gets its own chart, the grammar is shared. If
// workers < 1, the number of CPUs is used.
//
// Results are returned in the order of the input sentences. An error while
// parsing a sentence is reported in the Err field of its result and does
// not abort the batch. If ctx is cancelled, ParseAll stops handing out
// sentences and returns ctx.Err().
func (p *Parser) ParseAll(ctx context.Context, sentences [][]string, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	results := make([]*Result, len(sentences))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := p.Parse(sentences[i])
				if err != nil {
					tracer().Errorf("sentence #%d: %v", i, err)
					r.Err = err
				}
				results[i] = r
			}
		}()
	}
	var err error
feed:
	for i := range sentences {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		tracer().Infof("batch cancelled: %v", err)
		return nil, err
	}
	tracer().Infof("batch of %d sentences parsed by %d workers", len(sentences), workers)
	return results, nil
}
