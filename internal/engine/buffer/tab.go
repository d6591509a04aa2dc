package buffer

// SliceIsAllSpaces reports whether the characters of s in [start, end) are
// all ' '. An empty or out-of-range window is not all spaces.
func SliceIsAllSpaces(s string, start, end int) bool {
	if start < 0 || start >= end {
		return false
	}
	i := 0
	for _, r := range s {
		if i >= end {
			return true
		}
		if i >= start && r != ' ' {
			return false
		}
		i++
	}
	return i >= end
}

// DistanceToNextTabStop returns how many columns separate column from the
// next multiple of tabWidth, or 0 when column is already aligned.
func DistanceToNextTabStop(column, tabWidth int) int {
	if tabWidth <= 0 {
		return 0
	}
	if rem := column % tabWidth; rem != 0 {
		return tabWidth - rem
	}
	return 0
}
