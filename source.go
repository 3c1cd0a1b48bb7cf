package blobber

// ByteSource produces an endless stream of bytes, one per call.
// Both *Generator and *Blake2Source implement it.
type ByteSource interface {
	Next() byte
}

var (
	_ ByteSource = (*Generator)(nil)
	_ ByteSource = (*Blake2Source)(nil)
)
