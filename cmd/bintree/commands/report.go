package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/gotlibsh/trees/bintree"
	"github.com/gotlibsh/trees/config"
)

// treeReport is the rendered summary of one tree.
type treeReport struct {
	Seed       uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Values     []int  `yaml:"values,omitempty" json:"values,omitempty"`
	Rejected   int    `yaml:"rejected" json:"rejected"`
	PreOrder   []int  `yaml:"pre_order" json:"pre_order"`
	InOrder    []int  `yaml:"in_order" json:"in_order"`
	PostOrder  []int  `yaml:"post_order" json:"post_order"`
	LevelOrder []int  `yaml:"level_order" json:"level_order"`
	Size       uint64 `yaml:"size" json:"size"`
	Depth      int    `yaml:"depth" json:"depth"`
}

func newTreeReport(t *bintree.Node) treeReport {
	return treeReport{
		PreOrder:   t.PreOrder(),
		InOrder:    t.InOrder(),
		PostOrder:  t.PostOrder(),
		LevelOrder: t.LevelOrder(),
		Size:       t.Size(),
		Depth:      t.DepthEfficient(),
	}
}

// renderTreeReport writes r in the given format. The text format prints the
// traversals straight from t, so t must still be live.
func renderTreeReport(w io.Writer, format, title string, t *bintree.Node, r treeReport) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		renderTreeText(w, title, t, r)
		return nil
	}
}

func renderTreeText(w io.Writer, title string, t *bintree.Node, r treeReport) {
	color.New(color.FgGreen, color.Bold).Fprintln(w, title)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"order", "values"})
	tbl.AppendRow(table.Row{"pre", printed(t.PrintPreOrder)})
	tbl.AppendRow(table.Row{"in", printed(t.PrintInOrder)})
	tbl.AppendRow(table.Row{"post", printed(t.PrintPostOrder)})
	tbl.AppendRow(table.Row{"level", printed(t.PrintLevelOrder)})
	fmt.Fprintln(w, tbl.Render())

	fmt.Fprintf(w, "size of tree: %s\n", humanize.Comma(int64(r.Size)))
	fmt.Fprintf(w, "tree depth: %d\n", r.Depth)
	if r.Rejected > 0 {
		color.New(color.FgYellow).Fprintf(w, "rejected duplicates: %s\n", humanize.Comma(int64(r.Rejected)))
	}
}

// printed captures one print traversal as a table cell.
func printed(print func(io.Writer)) string {
	var sb strings.Builder
	print(&sb)
	return strings.TrimSpace(sb.String())
}

// joinInts renders arr the way the print traversals do, without the trailing
// space.
func joinInts(arr []int) string {
	if len(arr) == 0 {
		return strings.TrimSpace(bintree.EmptyMarker)
	}
	var sb strings.Builder
	bintree.PrintIntArray(&sb, arr)
	return strings.TrimSpace(sb.String())
}
