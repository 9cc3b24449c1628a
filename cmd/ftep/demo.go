package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/ftep/docgen"
	"github.com/rpcpool/ftep/invindex"
	"github.com/rpcpool/ftep/querybridge"
	"github.com/rpcpool/ftep/table"
)

// newCmd_Demo builds the five-canonical-document table file, embeds its
// index, reopens it, and runs the one scripted LIKE query spec.md's
// concrete scenarios describe (spec.md §6, "CLI (peripheral, included
// for completeness)").
func newCmd_Demo() *cli.Command {
	return &cli.Command{
		Name:        "demo",
		Usage:       "build a demonstration table file and run the dairy cow query",
		Description: "Writes five canonical documents to an in-memory table file, embeds a full-text index, reopens the file, and runs `title LIKE '%dairy cow%'`.",
		Action: func(c *cli.Context) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	docs := docgen.SeedDocs()
	klog.Infof("building table file from %d canonical documents", len(docs))

	var buf bytes.Buffer
	w := table.NewWriter(&buf)
	for _, d := range docs {
		if err := w.WriteRow(table.Row{ID: d.ID, Title: d.Title}); err != nil {
			return fmt.Errorf("writing row %d: %w", d.ID, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("sealing table file: %w", err)
	}

	data := buf.Bytes()
	klog.Infof("table file is %d bytes, reopening", len(data))

	r, err := table.Open(bytes.NewReader(data), int64(len(data)), invindex.DocSchema())
	if err != nil {
		return fmt.Errorf("opening table file: %w", err)
	}

	provider := querybridge.NewProvider(r)
	pattern := "%dairy cow%"
	plan, err := provider.Scan([]querybridge.Filter{{Column: "title", Op: querybridge.OpLike, Pattern: pattern}})
	if err != nil {
		return fmt.Errorf("planning scan for %q: %w", pattern, err)
	}

	rows, err := provider.Execute(plan)
	if err != nil {
		return fmt.Errorf("executing scan: %w", err)
	}

	fmt.Printf("SELECT * FROM t WHERE title LIKE '%s'\n", pattern)
	if plan.Empty {
		fmt.Println("(short-circuit: phrase matched no documents, no columnar I/O performed)")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("%d\t%s\n", row.ID, row.Title)
	}
	return nil
}
