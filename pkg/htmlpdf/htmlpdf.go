// Package htmlpdf prints HTML documents to PDF through a headless Chrome
// driven over the DevTools protocol.
package htmlpdf

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

//go:generate mockgen -package mockhtmlpdf -source=htmlpdf.go -destination=mock/mockhtmlpdf.go *
type Renderer interface {
	// Render prints html to a PDF. Page size comes from the document @page rule.
	Render(ctx context.Context, html string) ([]byte, error)
	// Close releases the browser.
	Close() error
}

// Options configure the Chrome connection.
type Options struct {
	// ControlURL is the DevTools websocket of a running browser. Empty launches
	// a local headless Chrome on first use.
	ControlURL string
}

// renderer is the rod-backed implementation of Renderer. The browser is
// connected lazily and shared by concurrent renders, one page each.
type renderer struct {
	options Options

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// New creates a Renderer. No browser is started until the first Render.
func New(options Options) Renderer {
	return &renderer{options: options}
}

func (r *renderer) connect(ctx context.Context) (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		if _, err := r.browser.Version(); err == nil {
			return r.browser, nil
		}
		_ = r.browser.Close()
		r.browser = nil
	}

	controlURL := r.options.ControlURL
	if controlURL == "" {
		if r.launcher == nil {
			r.launcher = launcher.New().Headless(true)
		}
		u, err := r.launcher.Launch()
		if err != nil {
			return nil, fmt.Errorf("could not launch chrome: %w", err)
		}
		controlURL = u
	}

	// the browser outlives the request that triggered the connection
	browser := rod.New().ControlURL(controlURL).Context(context.WithoutCancel(ctx))
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("could not connect to chrome: %w", err)
	}
	r.browser = browser

	return browser, nil
}

// Render implements Renderer.
func (r *renderer) Render(ctx context.Context, html string) ([]byte, error) {
	browser, err := r.connect(ctx)
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("could not open page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()
	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("could not set document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("could not wait for page load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not print pdf: %w", err)
	}

	b, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("could not read pdf stream: %w", err)
	}

	return b, nil
}

// Close implements Renderer.
func (r *renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}

	return err
}
