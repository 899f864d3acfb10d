package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/advmanik/casefolio/pkg/sdk"
	"github.com/spf13/pflag"
)

func main() {
	var (
		server   = pflag.String("server", defaultAddr(), "API base URL")
		title    = pflag.String("title", "", "case title (create/update)")
		category = pflag.String("category", "", "case category (create/update, list filter)")
		summary  = pflag.String("summary", "", "case summary (create/update)")
		outcome  = pflag.String("outcome", "", "case outcome (create/update)")
		search   = pflag.String("search", "", "free-text search (list)")
	)
	pflag.Parse()
	args := pflag.Args()

	if len(args) < 1 {
		printUsage()
		return
	}

	ctx := context.Background()
	client := sdk.New(*server)
	if token, err := sdk.LoadToken(); err == nil && token != "" {
		client.SetToken(token)
	}

	command := strings.ToLower(args[0])

	switch command {
	case "login":
		if len(args) < 3 {
			log.Fatal("Usage: casefolio login <username> <password>")
		}
		token, err := client.Login(ctx, args[1], args[2])
		if err != nil {
			log.Fatal(err)
		}
		if err := sdk.SaveToken(token); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "logout":
		if err := sdk.ClearToken(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "list":
		browser := sdk.LoadBrowser(ctx, client)
		filter := *category
		if filter == "" {
			filter = sdk.AllCategories
		}
		printJSON(browser.Filter(filter, *search))

	case "categories":
		browser := sdk.LoadBrowser(ctx, client)
		printJSON(browser.Categories())

	case "create":
		item, err := client.CreateCase(ctx, draftFromFlags(*title, *category, *summary, *outcome))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(item)
		reloadList(ctx, client)

	case "update":
		if len(args) < 2 {
			log.Fatal("Usage: casefolio update <id> --title ... --category ... --summary ... --outcome ...")
		}
		item, err := client.UpdateCase(ctx, args[1], draftFromFlags(*title, *category, *summary, *outcome))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(item)
		reloadList(ctx, client)

	case "delete":
		if len(args) < 2 {
			log.Fatal("Usage: casefolio delete <id>")
		}
		if err := client.DeleteCase(ctx, args[1]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")
		reloadList(ctx, client)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func defaultAddr() string {
	if addr := os.Getenv("CASEFOLIO_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:3001"
}

func draftFromFlags(title, category, summary, outcome string) schema.CaseDraft {
	return schema.CaseDraft{
		Title:    title,
		Category: category,
		Summary:  summary,
		Outcome:  outcome,
	}
}

// reloadList prints the fresh list after a mutation, mirroring the admin
// console's reload-after-save behavior.
func reloadList(ctx context.Context, client *sdk.Client) {
	items, err := client.ListCases(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not reload case list: %v\n", err)
		return
	}
	printJSON(items)
}

func printUsage() {
	fmt.Println("Casefolio CLI - admin console for the portfolio API")
	fmt.Println("\nUsage:")
	fmt.Println("  casefolio login <username> <password>")
	fmt.Println("  casefolio logout")
	fmt.Println("  casefolio list [--category <c>] [--search <term>]")
	fmt.Println("  casefolio categories")
	fmt.Println("  casefolio create --title <t> --category <c> --summary <s> --outcome <o>")
	fmt.Println("  casefolio update <id> --title <t> --category <c> --summary <s> --outcome <o>")
	fmt.Println("  casefolio delete <id>")
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  CASEFOLIO_ADDR    API base URL (default: http://localhost:3001)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
