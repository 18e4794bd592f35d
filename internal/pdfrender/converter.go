// Package pdfrender converts assembled HTML documents into PDF bytes
// using a headless browser so the print stylesheet is honored exactly.
package pdfrender

import (
	"context"

	"go.uber.org/fx"
)

// Converter renders a complete HTML document to PDF.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// Module wires the headless browser converter.
var Module = fx.Module("pdfrender",
	fx.Provide(NewChromeConverter),
)
