package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/docwiki/internal/adapters/bbolt"
	"github.com/corey/docwiki/internal/adapters/fsnotify"
	"github.com/corey/docwiki/internal/adapters/reporter"
	"github.com/corey/docwiki/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the doc index in sync with file changes",
	Long:  "Runs in the foreground, re-parsing changed source files and dropping removed ones until interrupted.",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("create .docwiki dirs: %w", err)
	}

	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	rep := reporter.NewConsole(os.Stderr, false)
	ix := &app.Indexer{
		Root:      root,
		ProjectID: app.ProjectID(root),
		Extractor: newExtractor(root),
		Storage:   store,
		Reporter:  rep,
	}

	// Catch up before watching so events only carry deltas.
	stats, err := ix.BuildIndex()
	if err != nil {
		return fmt.Errorf("initial index: %w", err)
	}
	if err := store.SaveWarningCount(ix.ProjectID, rep.Count()); err != nil {
		return fmt.Errorf("save warning count: %w", err)
	}
	fmt.Printf("indexed %d files, %d docs — watching %s\n", stats.Files, stats.Docs, root)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	stop := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		close(stop)
	}()

	return app.Watch(ix, watcher, stop, func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
}
