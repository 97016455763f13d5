package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/shelfd/internal/catalog"
)

func init() {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect catalog libraries",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered libraries",
		RunE:  runLibraryList,
	}

	itemsCmd := &cobra.Command{
		Use:   "items <library>",
		Short: "List catalog items in a library",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryItems,
	}
	itemsCmd.Flags().IntP("limit", "l", 50, "Maximum number of items to return")

	libraryCmd.AddCommand(listCmd)
	libraryCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	libs, err := store.ListLibraries()
	if err != nil {
		return err
	}
	if len(libs) == 0 {
		fmt.Println("No libraries registered. Run 'shelf scan' first.")
		return nil
	}

	if jsonOutput {
		return printJSON(libs)
	}

	fmt.Printf("Libraries (%d):\n\n", len(libs))
	fmt.Printf("  %-20s %-8s %s\n", "NAME", "TYPE", "ROOT")
	fmt.Println("  " + strings.Repeat("-", 60))
	for _, lib := range libs {
		fmt.Printf("  %-20s %-8s %s\n", lib.Name, lib.MediaType, lib.RootPath)
	}
	return nil
}

func runLibraryItems(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	items, err := store.ListItems(catalog.ItemFilter{Library: &args[0], Limit: limit})
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No items in library.")
		return nil
	}

	if jsonOutput {
		return printJSON(items)
	}

	fmt.Printf("Items (%d):\n\n", len(items))
	fmt.Printf("  %-4s %-8s %-40s %-10s %s\n", "ID", "TYPE", "TITLE", "RELEASED", "FILE")
	fmt.Println("  " + strings.Repeat("-", 90))
	for _, item := range items {
		title := item.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("  %-4d %-8s %-40s %-10s %s\n",
			item.ID, item.MediaType, title, item.ReleaseDate, item.Slug)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
