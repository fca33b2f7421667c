package cryptoutil

// Permute returns rearranged b elements in a order defined by t.
func Permute(b, t []byte) []byte {
	buf := make([]byte, len(t))
	for i, j := range t {
		buf[i] = b[j]
	}
	return buf
}
