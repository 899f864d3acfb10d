// casefolio-seed bulk-loads cases from a YAML file into the configured
// store. It talks to the store directly, not through the API, so it can run
// before the server is up.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/advmanik/casefolio/internal/config"
	"github.com/advmanik/casefolio/internal/store"
	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func main() {
	file := pflag.String("file", "seed.yaml", "YAML file with case drafts")
	pflag.Parse()

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var drafts []schema.CaseDraft
	if err := yaml.Unmarshal(content, &drafts); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}
	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			log.Fatalf("Entry %d is incomplete: every case needs title, category, summary, outcome", i+1)
		}
	}

	ctx := context.Background()
	cfg := config.Load()
	cases, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() {
		cases.Wait()
		cases.Close()
	}()

	stamp := time.Now().UTC().Format(schema.CreatedAtFormat)
	for _, d := range drafts {
		c := schema.Case{CreatedAt: stamp}
		d.Apply(&c)
		inserted, err := cases.Insert(ctx, c)
		if err != nil {
			log.Fatalf("Failed to insert %q: %v", d.Title, err)
		}
		fmt.Printf("Inserted %s (%s)\n", inserted.Title, inserted.ID)
	}

	all, err := cases.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list cases: %v", err)
	}
	fmt.Printf("\nStore now holds %d cases:\n", len(all))
	for i, c := range all {
		fmt.Printf("%d. %s (%s)\n", i+1, c.Title, c.Category)
	}
}
