package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mvkdcrypto/mvkd/bstree/bst"
	"github.com/mvkdcrypto/mvkd/bstree/dot"
	"github.com/mvkdcrypto/mvkd/bstree/logger"
)

var (
	demoInsert    = []int{15, 6, 18, 17, 20, 3, 7, 2, 4, 13, 9}
	demoSearch    = []int{15, 9, 22, 4, 100}
	demoSuccessor = []int{2, 3, 4, 6, 7, 9, 13, 15, 17, 18, 20, 22}
	demoDelete    = []int{4, 18, 6, 15, 99}

	found   = color.New(color.FgGreen).SprintFunc()
	missing = color.New(color.FgRed).SprintFunc()
)

type cmdDemo struct {
	outDir  string
	noDot   bool
	verbose bool
}

func (cmd *cmdDemo) Name() string     { return "demo" }
func (cmd *cmdDemo) Synopsis() string { return "run the sample insert/search/delete session" }
func (cmd *cmdDemo) Usage() string    { return "demo [-out DIR] [-nodot] [-v]\n" }

func (cmd *cmdDemo) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.outDir, "out", ".", "directory for dot snapshots")
	f.BoolVar(&cmd.noDot, "nodot", false, "do not write dot snapshots")
	f.BoolVar(&cmd.verbose, "v", false, "debug logging")
}

func (cmd *cmdDemo) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	log := logger.NewContext(ctx, logger.NewStandard("bstdemo", cmd.verbose))

	snaps, err := runDemo(os.Stdout, log)
	if err != nil {
		log.Error("%v", err)
		return subcommands.ExitFailure
	}
	if cmd.noDot {
		return subcommands.ExitSuccess
	}
	if err := writeSnapshots(cmd.outDir, snaps); err != nil {
		log.Error("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type snapshot struct {
	name string
	data []byte
}

type demo struct {
	tr    *bst.Tree
	snaps []snapshot
}

func (d *demo) snapshot(name string) error {
	var buf bytes.Buffer
	if err := dot.Write(&buf, d.tr.Root, dot.WithName(name)); err != nil {
		return err
	}
	d.snaps = append(d.snaps, snapshot{name: "bst_graph_" + name + ".dot", data: buf.Bytes()})
	return nil
}

func keyString(nd *bst.Node) string {
	if nd == nil {
		return missing("not found")
	}
	return found(fmt.Sprint(nd.Key))
}

// runDemo replays the sample session against a fresh tree, printing results
// to w. It returns a dot snapshot for every state the tree went through.
func runDemo(w io.Writer, log logger.ContextInterface) ([]snapshot, error) {
	tr, err := bst.New(bst.WithLogger(log))
	if err != nil {
		return nil, err
	}
	d := &demo{tr: tr}

	fmt.Fprintln(w, "--- Initial tree ---")
	for _, k := range demoInsert {
		tr.Insert(bst.Int(k))
	}
	if err := d.snapshot("initial"); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "\n--- Search ---")
	for _, k := range demoSearch {
		fmt.Fprintf(w, "search %d: %s\n", k, keyString(tr.Search(bst.Int(k))))
	}

	fmt.Fprintln(w, "\n--- Minimum/Maximum ---")
	lo, hi := tr.Min(), tr.Max()
	fmt.Fprintf(w, "minimum: %s\n", keyString(lo))
	fmt.Fprintf(w, "maximum: %s\n", keyString(hi))

	fmt.Fprintln(w, "\n--- Root ---")
	fmt.Fprintf(w, "root from maximum: %s\n", keyString(hi.Root()))
	fmt.Fprintf(w, "root from minimum: %s\n", keyString(lo.Root()))

	fmt.Fprintln(w, "\n--- Successor ---")
	for _, k := range demoSuccessor {
		nd := tr.Search(bst.Int(k))
		if nd == nil {
			fmt.Fprintf(w, "successor of %d: %s\n", k, missing("no such key"))
			continue
		}
		fmt.Fprintf(w, "successor of %d: %s\n", k, keyString(nd.Successor()))
	}

	fmt.Fprintln(w, "\n--- Duplicate insert ---")
	if _, inserted := tr.Insert(bst.Int(15)); inserted {
		return nil, errors.New("duplicate key 15 was inserted")
	}
	fmt.Fprintf(w, "insert 15: already present, %d keys\n", tr.Len())
	if err := d.snapshot("insert_15"); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "\n--- Delete ---")
	for _, k := range demoDelete {
		if !tr.DeleteKey(bst.Int(k)) {
			fmt.Fprintf(w, "delete %d: %s\n", k, missing("not found"))
			continue
		}
		if err := tr.Check(); err != nil {
			return nil, errors.Wrapf(err, "after deleting %d", k)
		}
		fmt.Fprintf(w, "delete %d: root is now %s\n", k, keyString(tr.Root))
		if err := d.snapshot(fmt.Sprintf("delete_%d", k)); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(w, "\n--- Final tree ---")
	fmt.Fprintf(w, "keys: %v\n", tr.Keys())
	tr.Dump()
	if err := d.snapshot("final"); err != nil {
		return nil, err
	}
	return d.snaps, nil
}

func writeSnapshots(dir string, snaps []snapshot) error {
	var g errgroup.Group
	for _, s := range snaps {
		s := s
		g.Go(func() error {
			path := filepath.Join(dir, s.name)
			return errors.Wrapf(os.WriteFile(path, s.data, 0o644), "write %s", path)
		})
	}
	return g.Wait()
}
