package lbytes

type (
	// Reader walks a fixed byte slice as little-endian words. It never grows or
	// copies the slice it was created over.
	Reader struct {
		bs     []byte
		offset int
	}
	// Writer is the counterpart of Reader for caller-owned destination buffers.
	Writer struct {
		bs     []byte
		offset int
	}
)

const WordSize = 4
