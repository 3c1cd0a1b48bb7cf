package blobber

// FillBlob returns exactly length bytes drawn from src, one call to
// src.Next per byte. A length of zero or less yields an empty slice.
func FillBlob(length int, src ByteSource) []byte {
	if length <= 0 {
		return []byte{}
	}

	ret := make([]byte, length)
	for i := range ret {
		ret[i] = src.Next()
	}
	return ret
}

// SeededBlob returns length bytes from a Generator seeded with seed.
// The result is reproducible.
func SeededBlob(length int, seed byte) []byte {
	return FillBlob(length, New(seed))
}

// RandomBlob returns length bytes from a time-seeded Generator.
func RandomBlob(length int) []byte {
	return FillBlob(length, NewTimeSeeded())
}

// FillFromTemplate repeats template end to end and truncates the result to
// exactly length bytes.
//
// Returns ErrInvalidTemplate if template is empty.
func FillFromTemplate(length int, template []byte) ([]byte, error) {
	if len(template) == 0 {
		return nil, ErrInvalidTemplate
	}
	if length <= 0 {
		return []byte{}, nil
	}

	ret := make([]byte, 0, length+len(template))
	for len(ret) < length {
		ret = append(ret, template...)
	}
	return ret[:length], nil
}
