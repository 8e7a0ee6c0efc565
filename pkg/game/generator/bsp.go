package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/queue"

	"mazegen/pkg/engine/world"
)

// bspNode represents a node in the BSP tree. Coordinates are on the
// half-resolution lattice of odd cells used by MakeSeparateRectangles.
type bspNode struct {
	row, col, height, width int
	left, right             *bspNode
}

// SplitRectangles places rooms by binary space partitioning: bounds is split
// breadth first until no node can be split or opts.MaxRects leaves exist, and
// each leaf large enough receives one room. Rooms never overlap and follow the
// same odd-lattice rules as MakeSeparateRectangles, so the two are
// interchangeable. Density and RetryCount are ignored.
func SplitRectangles(bounds world.Rectangle, opts PlacementOptions, rng *rand.Rand) []world.Rectangle {
	if opts.MaxRects <= 0 {
		return nil
	}
	lo := (opts.MinSize - 1) / 2
	hi := (opts.MaxSize - 1) / 2

	root := &bspNode{
		height: (bounds.Size.Height - 1) / 2,
		width:  (bounds.Size.Width - 1) / 2,
	}
	leaves := splitBSP(root, lo+2, opts.MaxRects, rng)

	var rects []world.Rectangle
	for _, leaf := range leaves {
		// Leaf must fit the room plus the wall that separates it from the next leaf
		if leaf.height <= lo || leaf.width <= lo {
			continue
		}
		h := uniform(rng, lo, min(hi, leaf.height-1))
		w := uniform(rng, lo, min(hi, leaf.width-1))
		row := leaf.row + rng.Intn(leaf.height-h)
		col := leaf.col + rng.Intn(leaf.width-w)
		rects = append(rects, world.Rect(bounds.Pos.Row+row*2+1, bounds.Pos.Col+col*2+1, h*2+1, w*2+1))
	}

	rng.Shuffle(len(rects), func(i, j int) {
		rects[i], rects[j] = rects[j], rects[i]
	})
	return rects
}

// splitBSP splits nodes breadth first and returns the leaves
func splitBSP(root *bspNode, minSize, maxLeaves int, rng *rand.Rand) []*bspNode {
	pending := queue.New[*bspNode]()
	pending.Enqueue(root)

	count := 1
	var leaves []*bspNode
	for !pending.Empty() {
		node := pending.Dequeue()
		if count < maxLeaves && node.split(minSize, rng) {
			count++
			pending.Enqueue(node.left)
			pending.Enqueue(node.right)
			continue
		}
		leaves = append(leaves, node)
	}
	return leaves
}

// split divides the node in two along its longer side. Returns false when
// neither side is at least twice minSize.
func (node *bspNode) split(minSize int, rng *rand.Rand) bool {
	canH := node.height >= minSize*2
	canW := node.width >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canW:
		splitHorizontal = false
	case node.height > node.width && canH:
		splitHorizontal = true
	case canW && canH:
		splitHorizontal = rng.Intn(2) == 0
	case canW:
		splitHorizontal = false
	case canH:
		splitHorizontal = true
	default:
		return false // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		at := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{row: node.row, col: node.col, height: at, width: node.width}
		node.right = &bspNode{row: node.row + at, col: node.col, height: node.height - at, width: node.width}
	} else {
		// Split vertically (left and right)
		at := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{row: node.row, col: node.col, height: node.height, width: at}
		node.right = &bspNode{row: node.row, col: node.col + at, height: node.height, width: node.width - at}
	}
	return true
}
