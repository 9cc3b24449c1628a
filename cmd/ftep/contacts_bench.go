package main

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/urfave/cli/v2"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/rpcpool/ftep/docgen"
)

// discardCounter is an io.Writer sink that counts bytes without retaining
// them, standing in for a real destination file so the benchmark measures
// the columnar writer's encoding throughput rather than disk I/O.
type discardCounter struct{ n int64 }

func (d *discardCounter) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return len(p), nil
}

// newCmd_ContactsBench runs the nested-contacts throughput benchmark: a
// pipeline unrelated to the embedded-index system, kept alongside it only
// because spec.md's distillation carves it out explicitly as a separate
// concern rather than something to drop silently (spec.md §1 Non-goals).
// It pushes every generated contact through a real parquet.GenericWriter
// so the nested Emails/Phones lists actually get repeated-field encoding,
// rather than just generating and counting records in memory.
func newCmd_ContactsBench() *cli.Command {
	var count int
	return &cli.Command{
		Name:  "contacts-bench",
		Usage: "generate synthetic nested contact records and report throughput",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Usage:       "number of contacts to generate",
				Value:       100_000,
				Destination: &count,
			},
		},
		Action: func(c *cli.Context) error {
			return runContactsBench(count)
		},
	}
}

func runContactsBench(count int) error {
	progress := mpb.New(mpb.WithWidth(64))
	bar := progress.AddBar(int64(count),
		mpb.PrependDecorators(decor.Name("contacts")),
		mpb.AppendDecorators(decor.Percentage(), decor.AverageETA(decor.ET_STYLE_GO)),
	)

	gen := docgen.NewContactGenerator(0)
	const batchSize = 1000

	sink := &discardCounter{}
	pw := parquet.NewGenericWriter[docgen.Contact](sink)

	start := time.Now()
	var named, withPhones int
	for generated := 0; generated < count; generated += batchSize {
		n := batchSize
		if remaining := count - generated; remaining < n {
			n = remaining
		}
		batch := gen.Generate(n)
		for _, contact := range batch {
			if contact.Name != nil {
				named++
			}
			if len(contact.Phones) > 0 {
				withPhones++
			}
		}
		if _, err := pw.Write(batch); err != nil {
			return fmt.Errorf("writing contact batch: %w", err)
		}
		bar.IncrBy(n)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing contact writer: %w", err)
	}
	progress.Wait()

	elapsed := time.Since(start)
	fmt.Printf("generated %d contacts in %s (%.0f/s), %d named, %d with phones, %d encoded bytes\n",
		count, elapsed, float64(count)/elapsed.Seconds(), named, withPhones, sink.n)
	return nil
}
