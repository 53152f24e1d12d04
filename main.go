package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pstuifzand/tui-tree/internal/app"
	"github.com/pstuifzand/tui-tree/internal/search"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file>\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "Shows an outline (.json), markdown (.md) or indented text file as a tree.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug mode (shows key events and viewport in the header)")
	logPath := flag.String("log", "tuitree.log", "Log file path")
	themeName := flag.String("theme", "", "Theme name (overrides the config file)")
	anchor := flag.String("anchor", "", "Draw rows from the top-left or bottom-left corner")
	exportPath := flag.String("export", "", "Write the visible rows as markdown to this file and exit")
	expandAll := flag.Bool("expand-all", false, "Start with every branch expanded")
	findQuery := flag.String("find", "", "Print the nodes matching this query and exit")
	format := flag.String("format", "text", "Output format for -find: text, fields, json or jsonl")
	fields := flag.String("fields", "", "Comma separated fields for -find (id, text, depth, children, parent_id, path)")
	flag.Usage = usage
	flag.Parse()

	logFile, err := os.Create(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filePath := args[0]

	if *findQuery != "" {
		outputFormat, err := search.ParseFormatFlag(*format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if err := app.Find(os.Stdout, filePath, *findQuery, outputFormat, search.ParseFieldsFlag(*fields)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *exportPath != "" {
		if err := app.Export(filePath, *exportPath, *expandAll); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported to %s\n", *exportPath)
		return
	}

	application, err := app.NewApp(filePath, app.Options{
		Theme:     *themeName,
		Anchor:    *anchor,
		ExpandAll: *expandAll,
		Debug:     *debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}
