package scene

// scaleConsts holds (multiplier, shift) pairs such that for an n-bit value
// v in [0, 2^n-1], (v*multiplier)>>shift maps 0 to 0 and 2^n-1 to FM1
// (0x10000) exactly, with minimal drift in between. Index 0 is unused;
// index n holds the pair for FixedBitsN(n, v).
var scaleConsts = [16]struct {
	m uint32
	s uint
}{
	1:  {0x10000, 0}, // single bit: 0 -> 0, 1 -> 0x10000
	2:  {43691, 1},
	3:  {74899, 3},
	4:  {34953, 3},
	5:  {67651, 5},
	6:  {532617, 9},
	7:  {264211, 9},
	8:  {32897, 7},
	9:  {4202561, 15},
	10: {1049613, 14},
	11: {262275, 13},
	12: {262211, 14},
	13: {262179, 15},
	14: {65541, 14},
	15: {65539, 15},
}

// FixedBitsN scales an n-bit unsigned value v (n in [1,15]) to Q15.16,
// mapping 0 to 0 and 2^n-1 to FM1 exactly.
func FixedBitsN(n int, v uint32) Fixed {
	c := scaleConsts[n]
	return Fixed((v * c.m) >> c.s)
}
