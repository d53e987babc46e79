package brochure_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"company-brochure/internal/domain/entity"
)

type aiCall struct {
	system string
	user   string
}

// fakeAI answers with reply/err, or with fn when set, and records calls.
type fakeAI struct {
	mu    sync.Mutex
	calls []aiCall
	reply string
	err   error
	fn    func(system, user string) (string, error)
}

func (f *fakeAI) Complete(_ context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, aiCall{system: system, user: user})
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(system, user)
	}
	return f.reply, f.err
}

func (f *fakeAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeFetcher returns fixed results and counts calls.
type fakeFetcher struct {
	mu           sync.Mutex
	links        entity.LinkSet
	content      entity.PageContent
	linkCalls    int
	contentCalls int
	// barrier, when set, is entered by both fetch methods before returning.
	barrier func()
}

func (f *fakeFetcher) FetchLinks(_ context.Context, baseURL string) entity.LinkSet {
	f.mu.Lock()
	f.linkCalls++
	f.mu.Unlock()
	if f.barrier != nil {
		f.barrier()
	}
	set := f.links
	set.BaseURL = baseURL
	return set
}

func (f *fakeFetcher) FetchContent(_ context.Context, pageURL string) entity.PageContent {
	f.mu.Lock()
	f.contentCalls++
	f.mu.Unlock()
	if f.barrier != nil {
		f.barrier()
	}
	c := f.content
	c.URL = pageURL
	return c
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
