package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/equipment"
)

type validationView struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Items   int    `json:"items"`
	Edges   int    `json:"edges"`
}

type componentView struct {
	ItemSlug string `json:"item_slug"`
	Quantity int    `json:"quantity"`
}

type rawCostView struct {
	ItemSlug   string          `json:"item_slug"`
	Craftable  bool            `json:"craftable"`
	GoldCost   int             `json:"gold_cost"`
	Components []componentView `json:"components"`
}

type finalProductView struct {
	ItemSlug      string `json:"item_slug"`
	TotalQuantity int    `json:"total_quantity"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func writeValidation(w io.Writer, format, path string, catalog *equipment.Config) error {
	view := validationView{Path: path, Version: catalog.Version, Items: len(catalog.Items)}
	for _, def := range catalog.Items {
		view.Edges += len(def.Requires)
	}
	if format == formatJSON {
		return writeJSON(w, view)
	}
	_, err := fmt.Fprintf(w, "%s: catalog v%s is valid (%d items, %d requirements)\n", view.Path, view.Version, view.Items, view.Edges)
	return err
}

func writeSyncResult(w io.Writer, format string, result *equipment.SyncResult) error {
	if format == formatJSON {
		return writeJSON(w, result)
	}
	if result.Unchanged {
		_, err := fmt.Fprintln(w, "Catalog unchanged, nothing imported.")
		return err
	}
	_, err := fmt.Fprintf(w, "Imported catalog: %d inserted, %d updated, %d skipped, %d requirements written\n",
		result.Inserted, result.Updated, result.Skipped, result.EdgesWritten)
	return err
}

func rawCostToView(slug string, result *domain.RawCostResult) rawCostView {
	view := rawCostView{ItemSlug: slug, Components: []componentView{}}
	if result == nil {
		return view
	}
	view.Craftable = true
	view.GoldCost = result.GoldCost
	for _, c := range result.Components {
		view.Components = append(view.Components, componentView{ItemSlug: c.Item.Slug, Quantity: c.Quantity})
	}
	return view
}

func writeRawCost(w io.Writer, format, slug string, result *domain.RawCostResult) error {
	view := rawCostToView(slug, result)
	if format == formatJSON {
		return writeJSON(w, view)
	}
	if !view.Craftable {
		_, err := fmt.Fprintf(w, "%s has no recipe\n", slug)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s: gold %d\n", slug, view.GoldCost); err != nil {
		return err
	}
	table := newTable(w, "MATERIAL", "QUANTITY")
	for _, c := range view.Components {
		table.Append([]string{c.ItemSlug, strconv.Itoa(c.Quantity)})
	}
	table.Render()
	return nil
}

func writeFinalProducts(w io.Writer, format, slug string, products []domain.FinalProduct) error {
	views := make([]finalProductView, len(products))
	for i, p := range products {
		views[i] = finalProductView{ItemSlug: p.Item.Slug, TotalQuantity: p.TotalQuantity}
	}
	if format == formatJSON {
		return writeJSON(w, views)
	}
	if len(views) == 0 {
		_, err := fmt.Fprintf(w, "nothing consumes %s\n", slug)
		return err
	}

	table := newTable(w, "PRODUCT", "TOTAL QUANTITY")
	for _, v := range views {
		table.Append([]string{v.ItemSlug, strconv.Itoa(v.TotalQuantity)})
	}
	table.Render()
	return nil
}
