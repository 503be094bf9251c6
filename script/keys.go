package script

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/typ.v4"
	"lukechampine.com/uint128"
)

// KeyType selects the value type of the tree a script is applied to.
type KeyType string

const (
	KeyInt     KeyType = "int"
	KeyUint    KeyType = "uint"
	KeyFloat   KeyType = "float"
	KeyString  KeyType = "string"
	KeyUint128 KeyType = "uint128"
)

// KeyTypes lists all supported key types.
var KeyTypes = []KeyType{KeyInt, KeyUint, KeyFloat, KeyString, KeyUint128}

// ParseKeyType converts textual key type into KeyType.
func ParseKeyType(s string) (KeyType, error) {
	keyType := KeyType(strings.ToLower(strings.TrimSpace(s)))
	for _, kt := range KeyTypes {
		if kt == keyType {
			return kt, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKeyType, "%q", s)
}

// codec converts script values from/to text and orders them.
type codec[T any] struct {
	parse   func(s string) (T, error)
	format  func(v T) string
	compare func(a, b T) int
}

var intCodec = codec[int64]{
	parse: func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	},
	format: func(v int64) string {
		return strconv.FormatInt(v, 10)
	},
	compare: typ.Compare[int64],
}

var uintCodec = codec[uint64]{
	parse: func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	},
	format: func(v uint64) string {
		return strconv.FormatUint(v, 10)
	},
	compare: typ.Compare[uint64],
}

var floatCodec = codec[float64]{
	parse: func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		// NaN is not ordered
		if math.IsNaN(v) {
			return 0, errors.New("NaN is not comparable")
		}
		// -0 and 0 are equal and must share the same textual form
		if v == 0 {
			v = 0
		}
		return v, nil
	},
	format: func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	},
	compare: typ.Compare[float64],
}

var stringCodec = codec[string]{
	parse: func(s string) (string, error) {
		return s, nil
	},
	format: func(v string) string {
		return v
	},
	compare: strings.Compare,
}

var uint128Codec = codec[uint128.Uint128]{
	parse: uint128.FromString,
	format: func(v uint128.Uint128) string {
		return v.String()
	},
	compare: func(a, b uint128.Uint128) int {
		return a.Cmp(b)
	},
}
