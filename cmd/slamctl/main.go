// Command slamctl is a read-only companion to slamd: "dump" renders the
// persistent database as a table, for inspecting stored arrangements
// without running the daemon (spec §6 calls the CLI surface "thin"; this
// subcommand is an operational convenience, not a requirement).
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/fgindraud/slam/daemon"
	"github.com/fgindraud/slam/layout"
	"github.com/fgindraud/slam/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dump":
		runDump(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: slamctl dump [--database PATH]")
}

func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	databasePath := fs.String("database", "", "override the default database path")
	fs.Parse(args)

	path := *databasePath
	if path == "" {
		var err error
		path, err = daemon.DefaultDatabasePath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	s, err := store.LoadOrEmpty(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	layouts := s.All()
	if len(layouts) == 0 {
		fmt.Println("database is empty")
		return
	}
	for _, l := range layouts {
		renderLayout(l)
	}
}

func renderLayout(l layout.Layout) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(store.KeyOf(l))
	t.AppendHeader(table.Row{"Output", "State", "Size", "Hz", "Transform", "Position", "Primary"})

	for _, e := range l.Entries {
		primary := ""
		if l.Primary != nil && l.Primary.Equal(e.ID) {
			primary = "*"
		}
		if !e.State.IsEnabled() {
			t.AppendRow(table.Row{e.ID.String(), "Disabled", "-", "-", "-", "-", primary})
			continue
		}
		t.AppendRow(table.Row{
			e.ID.String(),
			"Enabled",
			fmt.Sprintf("%dx%d", e.State.Mode.Size.X, e.State.Mode.Size.Y),
			e.State.Mode.Frequency,
			fmt.Sprintf("reflect=%v rot=%s", e.State.Transform.Reflect, e.State.Transform.Rotation),
			fmt.Sprintf("(%d,%d)", e.State.BottomLeft.X, e.State.BottomLeft.Y),
			primary,
		})
	}

	t.Render()
	fmt.Println()
}
