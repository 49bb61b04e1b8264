package shamir

import "runtime"

// zeroize overwrites b with zero bytes. The runtime.KeepAlive call after
// the loop keeps the compiler from proving the write is dead and eliding
// it, which is the failure mode a plain "clear b before it goes out of
// scope" loop is prone to under aggressive dead-store elimination.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func zeroizeMatrix(m [][]byte) {
	for _, row := range m {
		zeroize(row)
	}
}
