package common

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// password bytes read from the terminal once they were handed over.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
