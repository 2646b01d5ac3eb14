package grid

import "fmt"

// FindLogicalIndexForVisualSlot maps a 0-based slot, counted only among
// visible non-fixed columns, to its absolute index in set. Fixed and
// invisible columns shift the absolute index without consuming a slot.
func FindLogicalIndexForVisualSlot(slot int, set *ColumnSet) (int, error) {
	count := set.MovableVisibleCount()
	if slot < 0 || slot >= count {
		return -1, fmt.Errorf("slot %d outside [0, %d): %w", slot, count, ErrInvalidArgument)
	}

	counted := 0
	for i := 0; i < set.Len(); i++ {
		c := set.At(i)
		if !c.Visible || c.IsRowHeader {
			continue
		}
		if counted == slot {
			return i, nil
		}
		counted++
	}
	return -1, fmt.Errorf("slot %d: %w", slot, ErrInvalidArgument)
}

// scanStep is the single place where direction is decided: negative
// displacement walks toward index 0 and positive toward the end, with both
// mirrored for right-to-left grids.
func scanStep(delta int, rtl bool) int {
	step := 1
	if delta < 0 {
		step = -1
	}
	if rtl {
		step = -step
	}
	return step
}

// ResolveTargetFromDisplacement converts a horizontal pointer displacement of
// the column at origin into the absolute index it should land on.
//
// Starting next to origin it walks in the scan direction, adding the widths of
// visible columns (movable or not, they all occupy geometry). Once the sum
// exceeds |delta| the landing index is the one just before the crossing. When
// the walk runs off the data range first, the column lands at that extreme
// end. ok is false when the result is no move at all.
func ResolveTargetFromDisplacement(origin, delta int, set *ColumnSet, rtl bool) (target int, ok bool) {
	lo, hi := set.FixedCount(), set.Len()-1
	if delta == 0 || origin < lo || origin > hi {
		return origin, false
	}

	step := scanStep(delta, rtl)
	dist := delta
	if dist < 0 {
		dist = -dist
	}

	acc := 0
	for i := origin + step; i >= lo && i <= hi; i += step {
		c := set.At(i)
		if !c.Visible {
			continue
		}
		acc += c.ResolvedWidth()
		if acc > dist {
			target = i - step
			return target, target != origin
		}
	}

	if acc < dist {
		target = hi
		if step < 0 {
			target = lo
		}
		return target, target != origin
	}
	return origin, false
}
