package render

import (
	"context"
	"encoding/base64"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const pdfStyleCSS = `
body{font-family:Georgia,'Times New Roman',serif;color:#1c1917;margin:0 auto;max-width:760px;padding:1rem;}
h2{font-size:1.05rem;letter-spacing:0.02em;border-bottom:1px solid #d6d3d1;padding-bottom:0.25rem;margin:1.4rem 0 0.6rem;}
p{font-size:0.85rem;line-height:1.5;margin:0.4rem 0;}
p.numbered{font-weight:700;margin-top:0.9rem;}
p.alert{background:#fef3c7;border:1px solid #fcd34d;color:#78350f;padding:0.5rem;border-radius:4px;}
li{font-size:0.85rem;line-height:1.45;margin:0.2rem 0 0.2rem 1.2rem;list-style:disc;}
li.sub{margin-left:2.4rem;list-style:circle;}
hr{border:0;border-top:1px solid #a8a29e;margin:1rem 0;}
.ad-slot{margin:0.8rem 0;text-align:center;}
.ad-slot img{max-width:100%;max-height:120px;}
.ad-slot-empty{border:1px dashed #a8a29e;color:#78716c;font-size:0.75rem;padding:0.8rem;}
`

// ChromiumPDFRenderer prints resolved reports through a headless
// Chromium. Construction is cheap; each Render spawns its own browser
// process so concurrent exports do not share state.
type ChromiumPDFRenderer struct {
	chromePath string
}

func NewChromiumPDFRenderer() *ChromiumPDFRenderer {
	return &ChromiumPDFRenderer{chromePath: detectChromePath()}
}

// Render resolves the raw report against the active announcements and
// prints it as an A4 PDF.
func (r *ChromiumPDFRenderer) Render(ctx context.Context, report string, active []Announcement) ([]byte, error) {
	body, err := ReportHTML(report, active)
	if err != nil {
		return nil, err
	}
	htmlDoc := "<!doctype html><html><head><meta charset='utf-8'><title>Diagnóstico Jurídico</title>" +
		"<style>" + pdfStyleCSS +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}" +
		"@media print{@page{size:A4;margin:12mm;}}" +
		"</style></head><body>" +
		body +
		"</body></html>"

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;padding-right:8px;">` +
				`Página <span class="pageNumber"></span> de <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
