package model

// History is a bounded stack of inverse operations over one project.
// Every recorded add or remove pushes the operation that would undo it;
// Undo pops and applies the most recent one. When the stack is full the
// oldest entry is evicted, so undo depth is capped, not unbounded.
//
// Only the aggregate's structural mutations are recorded. Field edits
// are not undoable, matching the mutation surface that touches
// ModifiedDate.
type History struct {
	max int
	ops []inverseOp
}

type inverseOp func(*Project)

// NewHistory creates a history with the given maximum depth. A depth
// below one disables recording entirely.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Len returns the number of undoable operations.
func (h *History) Len() int { return len(h.ops) }

// RecordAdd records that the component with the given ID was added; its
// inverse is removal.
func (h *History) RecordAdd(id string) {
	h.push(func(p *Project) {
		p.RemoveComponent(id)
	})
}

// RecordRemove records that c was removed from position index; its
// inverse reinserts it at the same z-order.
func (h *History) RecordRemove(c *Component, index int) {
	h.push(func(p *Project) {
		p.InsertComponentAt(index, c)
	})
}

// Undo applies the most recent inverse operation to p. Returns false
// when there is nothing to undo.
func (h *History) Undo(p *Project) bool {
	if len(h.ops) == 0 {
		return false
	}
	op := h.ops[len(h.ops)-1]
	h.ops = h.ops[:len(h.ops)-1]
	op(p)
	return true
}

// Clear drops all recorded operations, e.g. after loading a new project.
func (h *History) Clear() {
	h.ops = nil
}

func (h *History) push(op inverseOp) {
	if h.max < 1 {
		return
	}
	if len(h.ops) == h.max {
		copy(h.ops, h.ops[1:])
		h.ops = h.ops[:len(h.ops)-1]
	}
	h.ops = append(h.ops, op)
}
