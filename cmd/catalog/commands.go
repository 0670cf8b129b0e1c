package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"artbook_backend/database"
	"artbook_backend/internal/logger"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/services"
	"artbook_backend/internal/services/dto"
	"artbook_backend/internal/validator"

	"github.com/spf13/cobra"
)

type cli struct {
	dsn    string
	env    string
	asJSON bool

	svc   *services.ServiceContainer
	close func()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Query the artist catalog and booking leads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLogger(logger.New(c.env, cmd.ErrOrStderr()))
			return c.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.close != nil {
				c.close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&c.dsn, "dsn", os.Getenv("DATABASE_URL"), "Postgres DSN; empty uses the seed catalog")
	cmd.PersistentFlags().StringVar(&c.env, "env", "production", "Log format (development for text)")
	cmd.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Print JSON instead of a table")

	cmd.AddCommand(
		c.artistsCmd(),
		c.locationsCmd(),
		c.categoriesCmd(),
		c.leadsCmd(),
		c.statsCmd(),
	)
	return cmd
}

func (c *cli) open() error {
	var catalog repositories.CatalogRepository
	if c.dsn == "" {
		catalog = repositories.NewMemoryCatalogRepository(
			database.SeedArtists(), database.SeedCategories(), database.SeedBookingLeads(),
		)
	} else {
		db, err := database.Connect(c.dsn)
		if err != nil {
			return err
		}
		c.close = func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		catalog = repositories.NewGormCatalogRepository(db)
	}

	c.svc = &services.ServiceContainer{
		ArtistService:    services.NewArtistService(catalog, nil),
		CategoryService:  services.NewCategoryService(catalog),
		DashboardService: services.NewDashboardService(catalog),
	}
	return nil
}

func (c *cli) artistsCmd() *cobra.Command {
	var req dto.ArtistListRequest

	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List artists matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.New().Validate(&req); err != nil {
				return err
			}
			resp, err := c.svc.ArtistService.ListArtists(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}

			return writeTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CATEGORY", "LOCATION", "FEE"}, func(row func(...any)) {
				for _, a := range resp.Artists {
					row(a.ID, a.Name, a.Category, a.Location.Label(), fmt.Sprintf("$%d - $%d", a.FeeRange.Min, a.FeeRange.Max))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&req.Search, "search", "s", "", "Match name, bio or specialties")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category id")
	cmd.Flags().StringVar(&req.Location, "location", "", `Location label, e.g. "Austin, TX"`)
	cmd.Flags().StringVar(&req.PriceRange, "price-range", "", "under-1000, 1000-3000, 3000-5000 or over-5000")
	return cmd
}

func (c *cli) locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the distinct artist locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.svc.ArtistService.FilterOptions(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), opts.Locations)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(opts.Locations, "\n"))
			return err
		},
	}
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the artist categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := c.svc.CategoryService.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "NAME", "ARTISTS"}, func(row func(...any)) {
				for _, cat := range categories {
					row(cat.ID, cat.Name, cat.ArtistCount)
				}
			})
		},
	}
}

func (c *cli) leadsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "leads",
		Short: "List booking leads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.svc.DashboardService.ListLeads(cmd.Context(), status)
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "ARTIST", "CLIENT", "EVENT", "BUDGET", "STATUS"}, func(row func(...any)) {
				for _, l := range resp.Leads {
					row(l.ID, l.ArtistName, l.ClientName, l.EventType, l.Budget, l.Status)
				}
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", dto.StatusAll, "all, pending, confirmed or declined")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := c.svc.DashboardService.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			return writeTable(cmd.OutOrStdout(), []string{"TOTAL", "PENDING", "CONFIRMED", "REVENUE"}, func(row func(...any)) {
				row(stats.TotalLeads, stats.PendingLeads, stats.ConfirmedBookings, fmt.Sprintf("$%d", stats.TotalRevenue))
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, header []string, rows func(row func(...any))) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	rows(func(cells ...any) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprint(cell)
		}
		fmt.Fprintln(tw, strings.Join(parts, "\t"))
	})
	return tw.Flush()
}
