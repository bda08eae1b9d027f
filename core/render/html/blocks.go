package html

import "github.com/FocuswithJustin/Aozora/core/ast"

// blockContext is one open block region.
type blockContext struct {
	blockType ast.BlockType
	params    ast.BlockParams
}

// blockManager tracks open block regions across lines. Aozora block
// directives do not nest cleanly, so closing walks the stack looking for the
// matching region rather than requiring it on top.
type blockManager struct {
	stack []blockContext

	// midashiID numbers heading anchors. Each level advances a different
	// digit so ids stay unique and ordered within the document.
	midashiID int
}

func (m *blockManager) stackLen() int {
	return len(m.stack)
}

func (m *blockManager) push(bt ast.BlockType, params ast.BlockParams) {
	m.stack = append(m.stack, blockContext{blockType: bt, params: params})
}

func (m *blockManager) pop() (blockContext, bool) {
	if len(m.stack) == 0 {
		return blockContext{}, false
	}
	c := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return c, true
}

func (m *blockManager) removeAt(i int) blockContext {
	c := m.stack[i]
	m.stack = append(m.stack[:i], m.stack[i+1:]...)
	return c
}

// popToLength closes regions until the stack is back to target length,
// returning them innermost first.
func (m *blockManager) popToLength(target int) []blockContext {
	var closed []blockContext
	for len(m.stack) > target {
		c, _ := m.pop()
		closed = append(closed, c)
	}
	return closed
}

// findBurasage reports whether a hanging indent is open, and its wrap width
// and first-line text indent.
func (m *blockManager) findBurasage() (wrapWidth, textIndent int, ok bool) {
	for _, c := range m.stack {
		if c.blockType == ast.BlockBurasage {
			wrap := c.params.WrapWidthOr(1)
			return wrap, c.params.WidthOr(0) - wrap, true
		}
	}
	return 0, 0, false
}

// closeInlineBlocks removes every region opened without ここから; those close
// at the end of the line they started on.
func (m *blockManager) closeInlineBlocks() []blockContext {
	var closed []blockContext
	for {
		i := -1
		for j := len(m.stack) - 1; j >= 0; j-- {
			if !m.stack[j].params.IsBlock {
				i = j
				break
			}
		}
		if i < 0 {
			return closed
		}
		closed = append(closed, m.removeAt(i))
	}
}

// closeRelatedBlocks closes regions a new indent-family block supersedes: a
// fresh 字下げ or 地付き replaces an open one of its own kind, and hanging
// indents fold into whichever indent opens next. Hanging indents emit no
// closing tag and are dropped from the result.
func (m *blockManager) closeRelatedBlocks(bt ast.BlockType) []blockContext {
	if bt != ast.BlockJisage && bt != ast.BlockChitsuki && bt != ast.BlockBurasage {
		return nil
	}
	var closed []blockContext
	for {
		i := -1
		for j := len(m.stack) - 1; j >= 0; j-- {
			c := m.stack[j]
			if c.blockType == bt ||
				c.blockType == ast.BlockBurasage ||
				(bt == ast.BlockBurasage && c.blockType == ast.BlockJisage) {
				i = j
				break
			}
		}
		if i < 0 {
			return closed
		}
		c := m.removeAt(i)
		if c.blockType != ast.BlockBurasage {
			closed = append(closed, c)
		}
	}
}

// findAndClose removes the innermost region of the given type. Closing a
// 字下げ also closes a hanging indent, which is an indent underneath.
func (m *blockManager) findAndClose(bt ast.BlockType) (blockContext, bool) {
	for j := len(m.stack) - 1; j >= 0; j-- {
		c := m.stack[j]
		if c.blockType == bt ||
			(bt == ast.BlockJisage && c.blockType == ast.BlockBurasage) {
			return m.removeAt(j), true
		}
	}
	return blockContext{}, false
}

func (m *blockManager) nextMidashiID(level ast.MidashiLevel) int {
	switch level {
	case ast.MidashiNaka:
		m.midashiID += 10
	case ast.MidashiKo:
		m.midashiID++
	default:
		m.midashiID += 100
	}
	return m.midashiID
}

// startTag renders the opening tag for a region, assigning heading ids as a
// side effect.
func (m *blockManager) startTag(bt ast.BlockType, params ast.BlockParams) string {
	id := 0
	if bt == ast.BlockMidashi {
		id = m.nextMidashiID(params.Level)
	}
	return blockStartTag(bt, params, id)
}

func (m *blockManager) endTag(bt ast.BlockType, params ast.BlockParams) string {
	return blockEndTag(bt, params)
}
