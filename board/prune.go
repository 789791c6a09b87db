package board

import "github.com/rs/zerolog/log"

// Live returns the windows of s that are still open on this position: those
// that do not hold both a red and a yellow pawn. The board is not modified,
// and the relative order of the survivors is the table order.
func (b *Board) Live(s WindowSet) WindowSet {
	var dead WindowSet
	s.Each(func(i int, _ Window) bool {
		m := windowMasks[i]
		if b.red&m != 0 && b.yellow&m != 0 {
			dead = dead.with(i)
		}
		return true
	})
	return s.Without(dead)
}

// Prune drops every active window that holds both colors and returns how
// many were dropped. The active set only ever shrinks.
//
// Pruning assumes pawns are only added. A window pruned here is not given
// back when Pop later empties one of its cells; callers that pop (a search
// unwinding its moves, say) should keep their own set and use Live, or call
// Rescan after popping.
func (b *Board) Prune() int {
	before := b.active.Len()
	b.active = b.Live(b.active)
	return before - b.active.Len()
}

// Rescan rebuilds the active set from the full table against the current
// pawns. This is how a board recovers windows after pops.
func (b *Board) Rescan() {
	before := b.active.Len()
	b.active = b.Live(AllWindows)
	log.Debug().Int("before", before).Int("after", b.active.Len()).Msg("rescanned-windows")
}
