package pdfrender

import (
	"context"
	"errors"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/smallbiznis/invoicepress/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// A4 paper size in inches for page.PrintToPDF.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// ChromeConverter drives a headless Chrome instance. Each Convert call
// opens a fresh tab; concurrency is bounded so a burst of PDF requests
// cannot exhaust browser memory.
type ChromeConverter struct {
	log *zap.Logger

	allocCtx    context.Context
	allocCancel context.CancelFunc

	cfg config.Config
	sem chan struct{}
}

type ChromeConverterParam struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg config.Config
	Log *zap.Logger
}

func NewChromeConverter(p ChromeConverterParam) Converter {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	maxConcurrent := p.Cfg.RenderMaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	c := &ChromeConverter{
		log:         p.Log.Named("pdfrender"),
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		cfg:         p.Cfg,
		sem:         make(chan struct{}, maxConcurrent),
	}

	p.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			c.allocCancel()
			return nil
		},
	})

	return c
}

func (c *ChromeConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, errors.New("empty html document")
	}

	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.allocCtx)
	defer tabCancel()

	runCtx, cancel := context.WithTimeout(tabCtx, c.cfg.RenderTimeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		// Grace period for async layout work before waiting on fonts.
		chromedp.Sleep(c.cfg.RenderSettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var ready bool
			return chromedp.Evaluate(
				`document.fonts.ready.then(() => true)`,
				&ready,
				func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
					return p.WithAwaitPromise(true)
				},
			).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(false).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		c.log.Error("pdf conversion failed", zap.Error(err))
		return nil, err
	}

	return pdf, nil
}
