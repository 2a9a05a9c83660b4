package strtable

// permutation is the pseudorandom permutation of 0..255 from Pearson's paper.
// Changing a single entry changes every key and breaks existing files.
var permutation = [256]uint8{
	1, 14, 110, 25, 97, 174, 132, 119, 138, 170, 125, 118, 27, 233, 140, 51,
	87, 197, 177, 107, 234, 169, 56, 68, 30, 7, 173, 73, 188, 40, 36, 65,
	49, 213, 104, 190, 57, 211, 148, 223, 48, 115, 15, 2, 67, 186, 210, 28,
	12, 181, 103, 70, 22, 58, 75, 78, 183, 167, 238, 157, 124, 147, 172, 144,
	176, 161, 141, 86, 60, 66, 128, 83, 156, 241, 79, 46, 168, 198, 41, 254,
	178, 85, 253, 237, 250, 154, 133, 88, 35, 206, 95, 116, 252, 192, 54, 221,
	102, 218, 255, 240, 82, 106, 158, 201, 61, 3, 89, 9, 42, 155, 159, 93,
	166, 80, 50, 34, 175, 195, 100, 99, 26, 150, 16, 145, 4, 33, 8, 189,
	121, 64, 77, 72, 208, 245, 130, 122, 143, 55, 105, 134, 29, 164, 185, 194,
	193, 239, 101, 242, 5, 171, 126, 11, 74, 59, 137, 228, 108, 191, 232, 139,
	6, 24, 81, 20, 127, 17, 91, 92, 251, 151, 225, 207, 21, 98, 113, 112,
	84, 226, 18, 214, 199, 187, 13, 32, 94, 220, 224, 212, 247, 204, 196, 43,
	249, 236, 45, 244, 111, 182, 153, 136, 129, 90, 217, 202, 19, 165, 231, 71,
	230, 142, 96, 227, 62, 179, 246, 114, 162, 53, 160, 215, 205, 180, 47, 109,
	44, 38, 31, 149, 135, 0, 216, 52, 63, 23, 37, 69, 39, 117, 146, 184,
	163, 200, 222, 235, 248, 243, 219, 10, 152, 131, 123, 229, 203, 76, 120, 209,
}

// Hash returns the 16-bit two-pass Pearson hash of s's UTF-8 bytes.
// The high byte hashes s as is; the low byte hashes s with its first byte
// incremented by one (mod 256). The empty string hashes to 0.
func Hash(s string) uint16 {
	if s == "" {
		return 0
	}

	var hi, lo uint8
	for i := 0; i < len(s); i++ {
		hi = permutation[hi^s[i]]
	}

	lo = permutation[lo^(s[0]+1)] // uint8 arithmetic wraps 0xFF → 0x00
	for i := 1; i < len(s); i++ {
		lo = permutation[lo^s[i]]
	}

	return uint16(hi)<<8 | uint16(lo)
}
