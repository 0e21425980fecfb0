package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteLeaf(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	three := mustSearch(t, root, 3)
	four := mustSearch(t, root, 4)

	newRoot := Delete(root, four)
	require.Same(t, root, newRoot)
	require.NoError(t, Check(newRoot))
	require.Nil(t, newRoot.Search(Int(4)))
	require.Nil(t, three.Right)
	require.Equal(t, []int{15, 6, 3, 2, 7, 13, 9, 18, 17, 20}, preOrderKeys(newRoot))
}

func TestDeleteOneChild(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	seven := mustSearch(t, root, 7)
	nine := mustSearch(t, root, 9)

	// 13 only has a left child.
	root = Delete(root, mustSearch(t, root, 13))
	require.NoError(t, Check(root))
	require.Same(t, nine, seven.Right)
	require.Same(t, seven, nine.Parent())

	// 7 now only has a right child.
	six := mustSearch(t, root, 6)
	root = Delete(root, seven)
	require.NoError(t, Check(root))
	require.Same(t, nine, six.Right)
	require.Same(t, six, nine.Parent())
	require.Equal(t, []int{2, 3, 4, 6, 9, 15, 17, 18, 20}, inOrderKeys(root))
}

func TestDeleteTwoChildrenDirectSuccessor(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	six := mustSearch(t, root, 6)
	three := mustSearch(t, root, 3)
	seven := mustSearch(t, root, 7)
	require.Same(t, seven, six.Successor())

	root = Delete(root, six)
	require.NoError(t, Check(root))
	require.Nil(t, root.Search(Int(6)))

	// 7 moves into 6's slot and adopts its left subtree.
	require.Same(t, seven, root.Left)
	require.Same(t, root, seven.Parent())
	require.Same(t, three, seven.Left)
	require.Same(t, seven, three.Parent())
	require.Equal(t, 13, keyOf(seven.Right))
}

func TestDeleteTwoChildrenDeepSuccessor(t *testing.T) {
	root := buildForTesting(t, 10, 5, 20, 15, 25, 17, 12)
	twenty := mustSearch(t, root, 20)
	twelve := mustSearch(t, root, 12)
	fifteen := mustSearch(t, root, 15)

	root = Delete(root, mustSearch(t, root, 10))
	require.NoError(t, Check(root))

	// 12 is spliced out from under 15 and becomes the root.
	require.Same(t, twelve, root)
	require.Nil(t, twelve.Parent())
	require.Same(t, twenty, twelve.Right)
	require.Same(t, twelve, twenty.Parent())
	require.Nil(t, fifteen.Left)
	require.Equal(t, []int{5, 12, 15, 17, 20, 25}, inOrderKeys(root))
}

func TestDeleteSequence(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	twenty := mustSearch(t, root, 20)
	seventeen := mustSearch(t, root, 17)

	root = Delete(root, mustSearch(t, root, 4))
	require.NoError(t, Check(root))

	// 18 has both children; 20 is its direct right child and takes its place.
	root = Delete(root, mustSearch(t, root, 18))
	require.NoError(t, Check(root))
	require.Same(t, twenty, root.Right)
	require.Same(t, seventeen, twenty.Left)

	root = Delete(root, mustSearch(t, root, 6))
	require.NoError(t, Check(root))

	old := root
	succ := old.Successor()
	require.Same(t, seventeen, succ)
	root = Delete(root, old)
	require.NoError(t, Check(root))
	require.Same(t, succ, root)
	require.Nil(t, root.Parent())
	require.Equal(t, []int{17, 7, 3, 2, 13, 9, 20}, preOrderKeys(root))

	for _, k := range []int{4, 18, 6, 15} {
		require.Nil(t, root.Search(Int(k)))
	}
	require.Nil(t, root.Search(Int(99)))
}

func TestDeleteRootOnly(t *testing.T) {
	root := buildForTesting(t, 1)
	require.Nil(t, Delete(root, root))

	root = buildForTesting(t, 1, 2)
	two := root.Right
	root = Delete(root, root)
	require.Same(t, two, root)
	require.Nil(t, root.Parent())

	root = Delete(root, root)
	require.Nil(t, root)
}

func TestDeleteDetachesNode(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	six := mustSearch(t, root, 6)

	root = Delete(root, six)
	require.Nil(t, six.Parent())
	require.Nil(t, six.Left)
	require.Nil(t, six.Right)
	require.Same(t, six, six.Root())
	require.Nil(t, six.Successor())
	require.NoError(t, Check(root))
}

func TestTransplant(t *testing.T) {
	root := buildForTesting(t, sampleKeys...)
	eighteen := mustSearch(t, root, 18)
	twenty := mustSearch(t, root, 20)

	// Right slot.
	newRoot := Transplant(root, eighteen, twenty)
	require.Same(t, root, newRoot)
	require.Same(t, twenty, root.Right)
	require.Same(t, root, twenty.Parent())

	// Left slot, emptied.
	six := mustSearch(t, root, 6)
	newRoot = Transplant(root, six, nil)
	require.Same(t, root, newRoot)
	require.Nil(t, root.Left)

	// Root replaced.
	newRoot = Transplant(root, root, twenty)
	require.Same(t, twenty, newRoot)
	require.Nil(t, twenty.Parent())
}

func TestTransplantRootWithNothingEmptiesTree(t *testing.T) {
	root := buildForTesting(t, 7)
	require.Nil(t, Transplant(root, root, nil))
}
