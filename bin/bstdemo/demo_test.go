package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/mvkdcrypto/mvkd/bstree/logger"
)

func TestRunDemo(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	log := logger.NewContext(context.TODO(), logger.NewTestLogger(t))

	snaps, err := runDemo(&out, log)
	require.NoError(t, err)

	s := out.String()
	require.Contains(t, s, "search 9: 9\n")
	require.Contains(t, s, "search 22: not found\n")
	require.Contains(t, s, "minimum: 2\n")
	require.Contains(t, s, "maximum: 20\n")
	require.Contains(t, s, "root from minimum: 15\n")
	require.Contains(t, s, "successor of 2: 3\n")
	require.Contains(t, s, "successor of 15: 17\n")
	require.Contains(t, s, "successor of 20: not found\n")
	require.Contains(t, s, "successor of 22: no such key\n")
	require.Contains(t, s, "delete 15: root is now 17\n")
	require.Contains(t, s, "delete 99: not found\n")
	require.Contains(t, s, "keys: [2 3 7 9 13 17 20]\n")

	var names []string
	for _, snap := range snaps {
		names = append(names, snap.name)
	}
	require.Equal(t, []string{
		"bst_graph_initial.dot",
		"bst_graph_insert_15.dot",
		"bst_graph_delete_4.dot",
		"bst_graph_delete_18.dot",
		"bst_graph_delete_6.dot",
		"bst_graph_delete_15.dot",
		"bst_graph_final.dot",
	}, names)

	dir := t.TempDir()
	require.NoError(t, writeSnapshots(dir, snaps))
	for _, snap := range snaps {
		b, err := os.ReadFile(filepath.Join(dir, snap.name))
		require.NoError(t, err)
		require.Equal(t, snap.data, b)
	}
}
