package slist

import (
	"encoding/binary"
	"reflect"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/slist.go/pkg/identify"
)

var ErrUnhashable = errors.New("unhashable element type")

// Fingerprint digests the element sequence of l with SipHash-2-4. Lists that
// are Equal have the same fingerprint. Elements must be strings, byte
// slices, integers or implement identify.Identify.
func Fingerprint[T any](l *List[T]) (uint64, error) {
	buf := make([]byte, 0, (l.size+1)*8)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(l.size))
	for n := l.head.next; n != nil; n = n.next {
		key, err := getKeyHash(n.value)
		if err != nil {
			return 0, err
		}

		buf = binary.LittleEndian.AppendUint64(buf, key)
	}

	return siphash.Hash(sipHashKey1, sipHashKey2, buf), nil
}

// region Utilities
const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd

	// stands in for nil identities
	nilKey = 0x9e3779b97f4a7c15
)

func getKeyHash(v any) (uint64, error) {
	switch x := v.(type) {
	case identify.Identify:
		if isNil(x) {
			return nilKey, nil
		}
		return x.Identity(), nil
	case string:
		return siphash.Hash(sipHashKey1, sipHashKey2, []byte(x)), nil
	case []byte:
		return siphash.Hash(sipHashKey1, sipHashKey2, x), nil
	case int:
		return getUint64Hash(uint64(x)), nil
	case int8:
		return getUint64Hash(uint64(x)), nil
	case int16:
		return getUint64Hash(uint64(x)), nil
	case int32:
		return getUint64Hash(uint64(x)), nil
	case int64:
		return getUint64Hash(uint64(x)), nil
	case uint:
		return getUint64Hash(uint64(x)), nil
	case uint8:
		return getUint64Hash(uint64(x)), nil
	case uint16:
		return getUint64Hash(uint64(x)), nil
	case uint32:
		return getUint64Hash(uint64(x)), nil
	case uint64:
		return getUint64Hash(x), nil
	case uintptr:
		return getUint64Hash(uint64(x)), nil
	}

	return 0, errors.Wrapf(ErrUnhashable, "%T", v)
}

func getUint64Hash(num uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], num)
	return siphash.Hash(sipHashKey1, sipHashKey2, buf[:])
}

func isNil(itf any) bool {
	if itf == nil {
		return true
	}

	rv := reflect.ValueOf(itf)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// endregion
