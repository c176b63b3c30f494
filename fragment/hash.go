package fragment

import "github.com/cespare/xxhash/v2"

// FastHash returns a content fingerprint of the fragment's valid
// elements: encode is called once per element, in order, to feed the
// running digest. It is meant for the cheap equality-probable checks
// property tests use to compare a fragment's contents before and
// after a round trip, not for cryptographic use.
func (f *Fragment[T]) FastHash(encode func(h *xxhash.Digest, v T)) uint64 {
	h := xxhash.New()
	for i := 0; i < f.length; i++ {
		encode(h, f.data[i])
	}
	return h.Sum64()
}
