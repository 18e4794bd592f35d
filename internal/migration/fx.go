package migration

import (
	"github.com/smallbiznis/invoicepress/internal/config"
	"github.com/smallbiznis/invoicepress/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := RunMigrations(conn); err != nil {
			return err
		}

		if err := seed.EnsureDefaultCompany(conn); err != nil {
			return err
		}
		if cfg.SeedDemo {
			return seed.EnsureDemoInvoice(conn)
		}
		return nil
	}),
)
