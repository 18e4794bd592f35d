package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicepress/internal/config"
	"github.com/smallbiznis/invoicepress/internal/invoice"
	"github.com/smallbiznis/invoicepress/internal/logger"
	"github.com/smallbiznis/invoicepress/internal/migration"
	"github.com/smallbiznis/invoicepress/internal/observability/metrics"
	"github.com/smallbiznis/invoicepress/internal/pdfrender"
	"github.com/smallbiznis/invoicepress/internal/providers/pdf"
	"github.com/smallbiznis/invoicepress/internal/server"
	"github.com/smallbiznis/invoicepress/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		metrics.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// Functional domains
		pdfrender.Module,
		pdf.Module,
		invoice.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
