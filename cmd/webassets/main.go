package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: webassets check <list-url>...")
			os.Exit(1)
		}
		if err := runCheck(os.Stdout, os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("webassets %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`webassets - page title, meta tags, CSS and JavaScript for Echo sites

Usage:
  webassets <command> [arguments]

Commands:
  check <url>...  Validate CSS list files and the stylesheets they name
  serve           Run a demo server for the asset directory
  version         Print the webassets version
  help            Show this help message

Environment:
  WEBASSETS_DIR        Asset directory (default "public")
  WEBASSETS_CSS_ROOT   Root-relative URL of CSS files (default "/css/")
  WEBASSETS_JS_ROOT    Root-relative URL of JavaScript files (default "/js/")
  WEBASSETS_ADDR       Listen address for serve (default ":3000")
  WEBASSETS_LIST       CSS list loaded by the serve demo page
  WEBASSETS_MAIN       Identifier of the main script of the serve demo page

Examples:
  webassets check main.list admin/admin.list
  WEBASSETS_DIR=./public webassets serve`)
}
