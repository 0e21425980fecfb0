package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/mvkdcrypto/mvkd/bstree/bst"
	"github.com/mvkdcrypto/mvkd/bstree/dot"
	"github.com/mvkdcrypto/mvkd/bstree/logger"
)

type cmdRender struct {
	out     string
	parents bool
	verbose bool
}

func (cmd *cmdRender) Name() string     { return "render" }
func (cmd *cmdRender) Synopsis() string { return "build a tree from keys and write it as dot" }
func (cmd *cmdRender) Usage() string    { return "render [-o FILE] [-parents] [-v] KEY...\n" }

func (cmd *cmdRender) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.out, "o", "bst.dot", "output file")
	f.BoolVar(&cmd.parents, "parents", false, "draw parent back-references")
	f.BoolVar(&cmd.verbose, "v", false, "debug logging")
}

func (cmd *cmdRender) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	log := logger.NewContext(ctx, logger.NewStandard("bstdemo", cmd.verbose))
	if f.NArg() == 0 {
		log.Error("no keys given")
		return subcommands.ExitUsageError
	}

	tr, err := bst.New(bst.WithLogger(log))
	if err != nil {
		log.Error("%v", err)
		return subcommands.ExitFailure
	}
	for _, arg := range f.Args() {
		k, err := strconv.Atoi(arg)
		if err != nil {
			log.Error("bad key %q: %v", arg, err)
			return subcommands.ExitUsageError
		}
		tr.Insert(bst.Int(k))
	}

	var opts []dot.Option
	if cmd.parents {
		opts = append(opts, dot.WithParentEdges())
	}
	if err := dot.WriteFile(cmd.out, tr.Root, opts...); err != nil {
		log.Error("%v", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %d keys to %s\n", tr.Len(), cmd.out)
	return subcommands.ExitSuccess
}
