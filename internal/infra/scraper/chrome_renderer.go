package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRenderer loads pages in a shared headless Chrome instance, one tab
// per call, and returns the DOM once the page reports network idle.
//
// The browser is started on first use and lives until Close. Only the
// top-level URL goes through SSRF validation; subresources the page loads
// itself are not inspected.
type ChromeRenderer struct {
	config Config
	guard  guard
	logger *slog.Logger

	once          sync.Once
	startErr      error
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// NewChromeRenderer creates a ChromeRenderer. No browser is launched yet.
func NewChromeRenderer(config Config, logger *slog.Logger) *ChromeRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChromeRenderer{
		config: config,
		guard:  newGuard("chrome", config.DenyPrivateIPs, logger),
		logger: logger,
	}
}

// Name implements Renderer.
func (r *ChromeRenderer) Name() string { return "chrome" }

func (r *ChromeRenderer) start() error {
	r.once.Do(func() {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserAgent(r.config.UserAgent),
			chromedp.DisableGPU,
		)
		if os.Geteuid() == 0 {
			// Chrome refuses to start its sandbox as root, which is the
			// usual case inside containers.
			opts = append(opts, chromedp.NoSandbox)
		}
		if r.config.ChromePath != "" {
			opts = append(opts, chromedp.ExecPath(r.config.ChromePath))
		}

		allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
		browserCtx, browserCancel := chromedp.NewContext(allocCtx)

		// An empty Run launches the browser.
		if err := chromedp.Run(browserCtx); err != nil {
			browserCancel()
			allocCancel()
			r.startErr = fmt.Errorf("%w: start browser: %w", ErrRenderFailed, err)
			return
		}

		r.allocCancel = allocCancel
		r.browserCtx = browserCtx
		r.browserCancel = browserCancel
		r.logger.Info("headless browser started",
			slog.String("exec_path", r.config.ChromePath))
	})
	return r.startErr
}

// Render implements Renderer.
func (r *ChromeRenderer) Render(ctx context.Context, urlStr string) (string, error) {
	return r.guard.run(ctx, urlStr, func() (string, error) {
		if err := r.start(); err != nil {
			return "", err
		}
		return r.renderTab(ctx, urlStr)
	})
}

func (r *ChromeRenderer) renderTab(ctx context.Context, urlStr string) (string, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	// Tie the tab to the caller as well as the browser.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	timeoutCtx, cancel := context.WithTimeout(tabCtx, r.config.Timeout)
	defer cancel()

	watcher := newIdleWatcher()
	chromedp.ListenTarget(timeoutCtx, watcher.handle)

	var html string
	err := chromedp.Run(timeoutCtx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("frame tree: %w", err)
			}
			watcher.setMainFrame(tree.Frame.ID)
			return nil
		}),
		chromedp.Navigate(urlStr),
		chromedp.ActionFunc(watcher.wait),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(timeoutCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w: %s did not reach network idle within %v", ErrRenderTimeout, urlStr, r.config.Timeout)
		}
		return "", fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	return html, nil
}

// idleWatcher turns lifecycle events of the main frame into a network-idle
// signal. Events from iframes are ignored, as are events that arrive before
// the main frame is known.
type idleWatcher struct {
	mu        sync.Mutex
	mainFrame cdp.FrameID
	idle      chan struct{}
}

func newIdleWatcher() *idleWatcher {
	return &idleWatcher{idle: make(chan struct{}, 1)}
}

func (w *idleWatcher) setMainFrame(id cdp.FrameID) {
	w.mu.Lock()
	w.mainFrame = id
	w.mu.Unlock()
}

func (w *idleWatcher) handle(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok {
		return
	}
	w.mu.Lock()
	main := w.mainFrame
	w.mu.Unlock()
	if main == "" || e.FrameID != main {
		return
	}

	switch e.Name {
	case "init":
		// A new document started loading; earlier idle signals are stale.
		select {
		case <-w.idle:
		default:
		}
	case "networkIdle":
		select {
		case w.idle <- struct{}{}:
		default:
		}
	}
}

// wait blocks until the main frame reports network idle or ctx ends.
func (w *idleWatcher) wait(ctx context.Context) error {
	select {
	case <-w.idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the browser down. It is safe to call when the browser was
// never started.
func (r *ChromeRenderer) Close() {
	if r.browserCancel != nil {
		r.browserCancel()
	}
	if r.allocCancel != nil {
		r.allocCancel()
	}
}
