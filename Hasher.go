package DataStructures

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hasher selects the bucket of a key given the key's canonical bytes and the number of buckets.
// Implementations must be deterministic and return a value in [0, capacity).
type Hasher interface {
	Index(key []byte, capacity int) int
}

// KeyBytes returns the canonical bytes of key. Keys that are == have equal bytes:
//   - integers, bools, strings and non-zero floats read as fmt.Sprint prints them
//   - a negative zero float reads as positive zero
//   - pointers, channels and unsafe pointers read as their address, never the value pointed to
//   - structs, arrays and interfaces are encoded field by field, element by element or through
//     their dynamic value
//
// String methods are ignored, the encoding only depends on the value.
func KeyBytes(key any) []byte {
	return appendKey(nil, reflect.ValueOf(key))
}

func appendKey(b []byte, v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.Invalid:
		return append(b, "<nil>"...)
	case reflect.Bool:
		return strconv.AppendBool(b, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(b, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(b, v.Uint(), 10)
	case reflect.Float32:
		return fmt.Append(b, float32(positiveZero(v.Float())))
	case reflect.Float64:
		return fmt.Append(b, positiveZero(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		c = complex(positiveZero(real(c)), positiveZero(imag(c)))
		if v.Kind() == reflect.Complex64 {
			return fmt.Append(b, complex64(c))
		}
		return fmt.Append(b, c)
	case reflect.String:
		return append(b, v.String()...)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return fmt.Appendf(b, "0x%x", v.Pointer())
	case reflect.Interface:
		return appendKey(b, v.Elem())
	case reflect.Array:
		b = append(b, '[')
		for i := range v.Len() {
			if i > 0 {
				b = append(b, ' ')
			}
			b = appendKey(b, v.Index(i))
		}
		return append(b, ']')
	case reflect.Struct:
		b = append(b, '{')
		for i := range v.NumField() {
			if i > 0 {
				b = append(b, ' ')
			}
			b = appendKey(b, v.Field(i))
		}
		return append(b, '}')
	}
	// not comparable, never a map key
	return fmt.Appendf(b, "%v", v)
}

// positiveZero maps -0 to 0, other values are returned as is.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// XXHasher hashes with xxHash64. It is the default hasher of the maps.
type XXHasher struct{}

// Index of key among capacity buckets.
func (XXHasher) Index(key []byte, capacity int) int {
	return int(xxhash.Sum64(key) % uint64(capacity))
}

// SHA256Hasher reads the SHA-256 digest of the key as a big-endian unsigned integer and
// reduces it modulo capacity. Slower than XXHasher, but capacity doesn't need to be a power of
// two for the reduction to keep the whole digest.
type SHA256Hasher struct{}

// Index of key among capacity buckets.
func (SHA256Hasher) Index(key []byte, capacity int) int {
	sum := sha256.Sum256(key)
	n := new(big.Int).SetBytes(sum[:])
	return int(n.Mod(n, big.NewInt(int64(capacity))).Int64())
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(key []byte, capacity int) int

// Index calls f.
func (f HasherFunc) Index(key []byte, capacity int) int {
	return f(key, capacity)
}
