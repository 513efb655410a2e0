package main

import (
	"campus-hub/domain"
	"campus-hub/repositories"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type Config struct {
	// CATALOG_SECTION is courses, products or all
	Section string `envconfig:"CATALOG_SECTION" default:"all"`
	// CATALOG_COLOURS enables colorized section titles
	Colours bool `envconfig:"CATALOG_COLOURS" default:"true"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := dump(os.Stdout, config, repositories.NewCatalogRepository(time.Now().UTC())); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func dump(out io.Writer, config Config, catalog repositories.ICatalogRepository) error {
	switch config.Section {
	case "courses":
		courses(out, config, catalog)
	case "products":
		products(out, config, catalog)
	case "all":
		courses(out, config, catalog)
		products(out, config, catalog)
	default:
		return fmt.Errorf("unknown section %q, expected courses, products or all", config.Section)
	}
	return nil
}

func courses(out io.Writer, config Config, catalog repositories.ICatalogRepository) {
	title(out, config, "Courses")
	table := newTable(out, "ID", "Code", "Name")
	table.AppendBulk(lo.Map(catalog.Courses(), func(c domain.Course, _ int) []string {
		return []string{string(c.ID), c.Code, c.Name}
	}))
	table.Render()
}

func products(out io.Writer, config Config, catalog repositories.ICatalogRepository) {
	title(out, config, "Products")
	table := newTable(out, "ID", "Item", "Price", "Category", "Seller", "Posted")
	table.AppendBulk(lo.Map(catalog.Products(), func(p domain.Product, _ int) []string {
		return []string{string(p.ID), p.Name, "$" + p.Price.StringFixed(2), p.Category, p.Seller.Email, p.PostDate.Format("2006-01-02")}
	}))
	table.Render()
}

func title(out io.Writer, config Config, text string) {
	if config.Colours {
		text = color.New(color.FgCyan, color.OpBold).Render(text)
	}
	_, _ = fmt.Fprintln(out, text)
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
