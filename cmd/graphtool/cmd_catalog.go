package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlib/internal/catalog"
)

// openCatalog opens the catalog at dir, or at the configured location when
// dir is empty.
func (a *app) openCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		var err error
		if dir, err = a.cfg.CatalogPath(); err != nil {
			return nil, err
		}
	}
	a.log.Debug("catalog", "path", dir)

	return catalog.Open(catalog.Config{Path: dir, Logger: a.log})
}

func newCatalogCmd(a *app) *cobra.Command {
	var dir string
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Store and fetch named graph snapshots",
		Long: `Keep named snapshots of graph files in an embedded database.

Examples:
  graphtool catalog put nightly deps.graph
  graphtool catalog ls
  graphtool catalog get nightly restored.graph
  graphtool catalog rm nightly`,
	}
	root.PersistentFlags().StringVar(&dir, "catalog", "", "catalog directory (default from config)")

	// with opens the catalog around fn.
	with := func(fn func(c *catalog.Catalog) error) error {
		c, err := a.openCatalog(dir)
		if err != nil {
			return err
		}
		err = fn(c)
		if cerr := c.Close(); err == nil {
			err = cerr
		}
		return err
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "put NAME FILE",
			Short: "Store FILE under NAME",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := a.loadGraph(args[1])
				if err != nil {
					return err
				}
				return with(func(c *catalog.Catalog) error { return c.Put(args[0], g) })
			},
		},
		&cobra.Command{
			Use:   "get NAME OUT",
			Short: "Write the snapshot NAME to OUT",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return with(func(c *catalog.Catalog) error {
					g, err := c.Get(args[0])
					if err != nil {
						return err
					}
					return a.saveGraph(g, args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List snapshots as name<TAB>bytes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return with(func(c *catalog.Catalog) error {
					entries, err := c.List()
					if err != nil {
						return err
					}
					for _, e := range entries {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", e.Name, e.Size)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rm NAME",
			Short: "Delete the snapshot NAME",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return with(func(c *catalog.Catalog) error { return c.Delete(args[0]) })
			},
		},
	)

	return root
}
