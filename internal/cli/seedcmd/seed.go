package seedcmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/ludotrove/catalog/internal/cli/common"
	"github.com/ludotrove/catalog/internal/db"
	cataloggorm "github.com/ludotrove/catalog/internal/repo/gorm/catalog"
	"github.com/ludotrove/catalog/internal/validation"
)

type seedDoc struct {
	Publishers []seedLookup `yaml:"publishers"`
	Categories []seedLookup `yaml:"categories"`
	Games      []seedGame   `yaml:"games"`
}

type seedLookup struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

type seedGame struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	StarRating  *float64 `yaml:"star_rating"`
	Publisher   string   `yaml:"publisher"`
	Category    string   `yaml:"category"`
}

// New returns the `catalogctl seed` command.
func New() *cobra.Command {
	var cfgFile, seedFile, dsn string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog seed data idempotently",
		RunE: func(cmd *cobra.Command, args []string) error {
			common.SetupLoggerWithFile("info", "console", "", 0, 0, 0, false)
			v := viper.GetViper()
			v.SetEnvPrefix("CATALOG")
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
			v.AutomaticEnv()
			_ = v.BindPFlags(cmd.Flags())
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					slog.Warn("read config", "error", err)
				} else {
					slog.Info("config loaded", "file", v.ConfigFileUsed())
				}
			}
			common.SetupLoggerWithFile(
				v.GetString("log.level"),
				v.GetString("log.format"),
				v.GetString("log.file"),
				v.GetInt("log.max_size"),
				v.GetInt("log.max_backups"),
				v.GetInt("log.max_age"),
				v.GetBool("log.compress"),
			)

			raw, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			var doc seedDoc
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}
			if err := validateDoc(&doc); err != nil {
				return err
			}

			if dsn == "" {
				dsn = v.GetString("database.datasource")
			}
			gdb, err := db.Open(dsn)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			if err := cataloggorm.AutoMigrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := apply(gdb, &doc); err != nil {
				return err
			}
			slog.Info("seed complete",
				"publishers", len(doc.Publishers),
				"categories", len(doc.Categories),
				"games", len(doc.Games))
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "server config file (reads Database.DataSource)")
	cmd.Flags().StringVar(&seedFile, "file", "etc/seed.yaml", "seed data file")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database DSN, overrides config")
	return cmd
}

// validateDoc applies the same field rules as the API so bad seed data is
// rejected before anything is written.
func validateDoc(doc *seedDoc) error {
	check := func(kind string, lookups []seedLookup) error {
		for _, l := range lookups {
			if _, err := validation.String(kind+" name", l.Name, 2, false); err != nil {
				return fmt.Errorf("seed %s %q: %w", strings.ToLower(kind), l.Name, err)
			}
			if l.Description != nil {
				if _, err := validation.String("Description", *l.Description, 10, true); err != nil {
					return fmt.Errorf("seed %s %q: %w", strings.ToLower(kind), l.Name, err)
				}
			}
		}
		return nil
	}
	if err := check("Publisher", doc.Publishers); err != nil {
		return err
	}
	if err := check("Category", doc.Categories); err != nil {
		return err
	}
	for _, g := range doc.Games {
		if _, err := validation.String("Game title", g.Title, 2, false); err != nil {
			return fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		if _, err := validation.String("Description", g.Description, 10, false); err != nil {
			return fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		if g.Publisher == "" || g.Category == "" {
			return fmt.Errorf("seed game %q: publisher and category are required", g.Title)
		}
	}
	return nil
}

// apply upserts the document in one transaction: publishers and categories
// first-or-create by name, games created only when the title is new.
func apply(gdb *gorm.DB, doc *seedDoc) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		publishers := map[string]uint{}
		for _, p := range doc.Publishers {
			row := cataloggorm.Publisher{Name: p.Name}
			if err := tx.Where("name = ?", p.Name).
				Attrs(cataloggorm.Publisher{Description: p.Description}).
				FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed publisher %q: %w", p.Name, err)
			}
			publishers[p.Name] = row.ID
		}

		categories := map[string]uint{}
		for _, c := range doc.Categories {
			row := cataloggorm.Category{Name: c.Name}
			if err := tx.Where("name = ?", c.Name).
				Attrs(cataloggorm.Category{Description: c.Description}).
				FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", c.Name, err)
			}
			categories[c.Name] = row.ID
		}

		for _, g := range doc.Games {
			var n int64
			if err := tx.Model(&cataloggorm.Game{}).Where("title = ?", g.Title).Count(&n).Error; err != nil {
				return fmt.Errorf("seed game %q: %w", g.Title, err)
			}
			if n > 0 {
				slog.Info("seed: game exists, skipping", "title", g.Title)
				continue
			}
			publisherID, err := lookupID(tx, publishers, "publishers", g.Publisher)
			if err != nil {
				return fmt.Errorf("seed game %q: %w", g.Title, err)
			}
			categoryID, err := lookupID(tx, categories, "categories", g.Category)
			if err != nil {
				return fmt.Errorf("seed game %q: %w", g.Title, err)
			}
			description := g.Description
			row := cataloggorm.Game{
				Title:       g.Title,
				Description: &description,
				StarRating:  g.StarRating,
				PublisherID: publisherID,
				CategoryID:  categoryID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed game %q: %w", g.Title, err)
			}
			slog.Info("seed: game created", "title", g.Title, "id", row.ID)
		}
		return nil
	})
}

// lookupID resolves a name from this run's upserts, falling back to rows
// already in the table so games-only seed files work.
func lookupID(tx *gorm.DB, ids map[string]uint, table, name string) (uint, error) {
	if id, ok := ids[name]; ok {
		return id, nil
	}
	var row struct{ ID uint }
	if err := tx.Table(table).Where("name = ?", name).First(&row).Error; err != nil {
		return 0, fmt.Errorf("unknown reference %q: %w", name, err)
	}
	ids[name] = row.ID
	return row.ID, nil
}
