package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"proposalapi/internal/config"
)

// Sentinel errors for browser-driven PDF rasterization.
var (
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrPageCreate    = errors.New("failed to create browser page")
	ErrPageLoad      = errors.New("failed to load page")
	ErrPDFGeneration = errors.New("PDF generation failed")
)

// A4 page dimensions in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.4
)

// PDFRenderer rasterizes final HTML into paginated PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, htmlContent string) ([]byte, error)
}

// chromeRenderer implements PDFRenderer with a single-use headless Chrome
// process per call. No pooling: launch, render, tear down. Rod downloads a
// Chromium build on first run when no browser binary is configured.
type chromeRenderer struct {
	timeout    time.Duration
	browserBin string
	noSandbox  bool
}

// NewChromeRenderer creates a renderer from PDF config.
func NewChromeRenderer(cfg config.PDFConfig) PDFRenderer {
	timeout := cfg.RenderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &chromeRenderer{
		timeout:    timeout,
		browserBin: cfg.BrowserBin,
		noSandbox:  cfg.NoSandbox,
	}
}

var _ PDFRenderer = (*chromeRenderer)(nil)

// RenderPDF writes the HTML to a temp file, loads it in a fresh headless
// browser, waits for the page to settle (bounded by the configured
// timeout), and prints it to PDF. The browser is torn down unconditionally.
func (r *chromeRenderer) RenderPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempHTML(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	l := launcher.New().
		Headless(true).
		Set("disable-gpu")
	if r.browserBin != "" {
		l = l.Bin(r.browserBin)
	}
	if r.noSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	// Wait for the load event so embedded remote images are fetched, then
	// for the page to go idle before rasterizing.
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.WaitIdle(timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(buildPDFOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// buildPDFOptions returns print settings: A4, background graphics on,
// fixed margins, CSS @page sizing honored.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(marginInches),
		MarginBottom:      floatPtr(marginInches),
		MarginLeft:        floatPtr(marginInches),
		MarginRight:       floatPtr(marginInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// writeTempHTML stores the markup in a temp file so the browser can load
// it over file:// and resolve relative resources consistently.
func writeTempHTML(content string) (string, func(), error) {
	f, err := os.CreateTemp("", "proposal-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("create temp html: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("write temp html: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("close temp html: %w", err)
	}
	name := f.Name()
	return name, func() { os.Remove(name) }, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
