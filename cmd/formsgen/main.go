// Command formsgen generates typed form wiring from a YAML schema.
//
// Usage:
//
//	formsgen -schema forms.yaml -out forms_gen.go -pkg ui
//	formsgen -schema forms.yaml -out forms_gen.go -pkg ui -watch
//
// With -watch the schema file is regenerated on every change until the
// process is interrupted.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/forms/gen"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	schemaPath := flag.String("schema", "", "path to the YAML form schema")
	outPath := flag.String("out", "", "output Go file")
	pkg := flag.String("pkg", "", "package name for the generated file")
	watch := flag.Bool("watch", false, "regenerate whenever the schema changes")
	flag.Parse()

	if *schemaPath == "" || *outPath == "" || *pkg == "" {
		flag.Usage()
		return fmt.Errorf("formsgen: -schema, -out, and -pkg are required")
	}

	if err := generate(*schemaPath, *outPath, *pkg); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("formsgen: watch: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors commonly replace the file on save,
	// which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(*schemaPath)); err != nil {
		return fmt.Errorf("formsgen: watch %s: %w", *schemaPath, err)
	}

	slog.Info("watching schema", "path", *schemaPath)
	target := filepath.Clean(*schemaPath)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// A failed regeneration keeps the previous output so the
			// watch loop survives transient schema errors.
			if err := generate(*schemaPath, *outPath, *pkg); err != nil {
				slog.Error("regenerate failed", "err", err)
				continue
			}
			slog.Info("regenerated", "out", *outPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		}
	}
}

func generate(schemaPath, outPath, pkg string) error {
	schema, err := gen.LoadFile(schemaPath)
	if err != nil {
		return err
	}
	src, err := gen.Generate(schema, pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, src, 0o644)
}
