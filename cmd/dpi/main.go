package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"greg-hacke/go-imagedpi/config"
	"greg-hacke/go-imagedpi/meta"
	"greg-hacke/go-imagedpi/watcher"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dpi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dpi [options] <file|dir>...\n\n")
		fmt.Fprintf(stderr, "Report the resolution (DPI) embedded in JPEG and PNG files\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML config file")
	asJSON := fs.Bool("json", false, "Print one JSON report per file")
	verbose := fs.Bool("v", false, "Verbose output")
	watch := fs.Bool("watch", false, "Watch folders and report new images until interrupted")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}
	if *asJSON {
		cfg.Output.Format = "json"
	}
	if *verbose {
		cfg.Resolver.Verbose = true
	}

	logger := log.New(stderr, "", log.LstdFlags)
	resolver := cfg.NewResolver(logger)

	if *watch {
		if fs.NArg() > 0 {
			cfg.Watch.Dirs = fs.Args()
		}
		return watchFolders(cfg, resolver, stdout, stderr)
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	files, err := expandArgs(cfg, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	status := 0
	for _, path := range files {
		report, err := resolver.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
			status = 1
			continue
		}
		if err := printReport(stdout, cfg, report); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			status = 1
		}
	}

	return status
}

// expandArgs replaces directory arguments with the supported files they
// directly contain.
func expandArgs(cfg *config.Config, args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		var found []string
		for _, e := range entries {
			if e.Type().IsRegular() && cfg.WatchesExtension(e.Name()) {
				found = append(found, filepath.Join(arg, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// printReport writes a report in the configured output format
func printReport(w io.Writer, cfg *config.Config, report meta.Report) error {
	if cfg.Output.Format == "json" {
		out, err := report.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(w, out)
		return nil
	}

	fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", report.Path, report.MIMEType, report.Resolution.DPI, report.Resolution.Source)
	return nil
}

// watchFolders reports images as they land until SIGINT or SIGTERM
func watchFolders(cfg *config.Config, resolver *meta.Resolver, stdout, stderr io.Writer) int {
	w, err := watcher.New(cfg, resolver)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := w.Start(); err != nil {
		w.Stop()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case event, ok := <-w.Events():
			if !ok {
				return 0
			}
			if event.Err != nil {
				fmt.Fprintf(stderr, "Error reading %s: %v\n", event.Path, event.Err)
				continue
			}
			if err := printReport(stdout, cfg, event.Report); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
		case <-sigChan:
			fmt.Fprintln(stderr, "Shutting down...")
			w.Stop()
			return 0
		}
	}
}
