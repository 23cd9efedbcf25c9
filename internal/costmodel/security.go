package costmodel

import "sort"

// DefaultSecurityBits is the reference security level of every profile baseline.
const DefaultSecurityBits = 128

var securityMultipliers = map[int]float64{
	128: 1.0,
	192: 1.35,
	256: 1.70,
}

// SecurityMultiplier returns the cost multiplier for the given security level.
func SecurityMultiplier(bits int) (float64, error) {
	m, ok := securityMultipliers[bits]
	if !ok {
		return 0, NewErrInvalidParameter("security_bits must be one of %v", SecurityLevels())
	}
	return m, nil
}

// IsSupportedSecurityLevel reports whether bits is one of the allowed levels.
func IsSupportedSecurityLevel(bits int) bool {
	_, ok := securityMultipliers[bits]
	return ok
}

// SecurityLevels returns the allowed security levels in ascending order.
func SecurityLevels() []int {
	levels := make([]int, 0, len(securityMultipliers))
	for bits := range securityMultipliers {
		levels = append(levels, bits)
	}
	sort.Ints(levels)
	return levels
}

