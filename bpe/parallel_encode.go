package bpe

import (
	"bufio"
	"io"
	"sync"
)

// ParallelEncodeLines reads all lines from r, partitions them round-robin
// across workers goroutines, encodes each partition independently, and
// returns the per-line token ids in original order. This produces
// identical results to encoding every line serially; only the order work
// completes in differs.
func (e *Encoder) ParallelEncodeLines(r io.Reader, workers int) ([]ByteToken, error) {
	if workers < 1 {
		workers = 1
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Split(scanLinesKeepEnds)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, NewIOError("read-lines", "", err)
	}

	results := make([]ByteToken, len(lines))
	if len(lines) == 0 {
		return results, nil
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < len(lines); i += workers {
				results[i] = e.Encode(lines[i])
			}
		}(w)
	}
	wg.Wait()

	return results, nil
}
