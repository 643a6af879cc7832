// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parallax/block.go
// Summary: Geometry snapshots of tracked elements.
// Notes: Offsets subtract the translation already applied to a node, so
// rebuilding while displaced yields the same values.

package parallax

// Offset locates an element in document coordinates.
type Offset struct {
	// Abs is the untranslated distance from the document top.
	Abs float64
	// WrapperTop is Abs measured for the wrapper, 0 for the document.
	WrapperTop float64
	// IsWrapperLegit is false when the wrapper is the document itself.
	IsWrapperLegit bool
	// Rel is Abs - WrapperTop.
	Rel float64
}

// Travel holds the element's movement parameters.
type Travel struct {
	Zero  float64
	Speed float64
}

// Metadata holds measured element sizes.
type Metadata struct {
	// Height includes the vertical margins.
	Height Extent
}

// Block is the cached geometry of one tracked element.
type Block struct {
	Node Node
	// Wrapper is nil when the element is anchored to the document.
	Wrapper       Node
	Offset        Offset
	Travel        Travel
	Metadata      Metadata
	BaseTransform string
}

// BuildBlocks snapshots every node, index-aligned with nodes. wrapper is the
// engine-level wrapper and may be nil. The build fails when an element names
// a wrapper selector that matches nothing.
func BuildBlocks(doc Document, nodes []Node, wrapper Node, defaultSpeed float64) ([]Block, error) {
	scrollY := doc.ScrollY()
	blocks := make([]Block, 0, len(nodes))
	for _, n := range nodes {
		b, err := buildBlock(doc, n, wrapper, defaultSpeed, scrollY)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func buildBlock(doc Document, n Node, wrapper Node, defaultSpeed, scrollY float64) (Block, error) {
	opts := ReadOverrides(n, defaultSpeed)
	if opts.Wrapper != "" {
		w := doc.Query(opts.Wrapper)
		if w == nil {
			return Block{}, selectorError(ErrWrapperNotFound, opts.Wrapper)
		}
		wrapper = w
	}

	var b Block
	b.Node = n
	b.Wrapper = wrapper
	b.Offset.Abs = documentTop(n, scrollY)
	b.Offset.WrapperTop = documentTop(wrapper, scrollY)
	b.Offset.IsWrapperLegit = wrapper != nil
	b.Offset.Rel = b.Offset.Abs - b.Offset.WrapperTop

	b.Travel = Travel{Zero: b.Offset.Abs, Speed: opts.Speed}

	rect := n.BoundingRect()
	top, bottom := n.Margins()
	b.Metadata.Height = newExtent(rect.H + top + bottom)

	b.BaseTransform = StripTranslate(n.Transform())
	return b, nil
}

// documentTop is the node's distance from the document top without the
// vertical translation it currently carries. The document itself is at 0.
func documentTop(n Node, scrollY float64) float64 {
	if n == nil {
		return 0
	}
	return n.BoundingRect().Y + scrollY - TranslateY(n.Transform())
}
