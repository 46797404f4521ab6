package lists

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"
)

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// fakeFetcher serves fixed line sets per URL. URLs without an entry fail.
type fakeFetcher struct {
	mu      sync.Mutex
	sources map[string][]string
	calls   []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (*FetchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	lines, ok := f.sources[url]
	if !ok {
		return nil, fmt.Errorf("no such source: %s", url)
	}
	return &FetchResult{Lines: lines}, nil
}
