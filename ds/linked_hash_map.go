package ds

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// LinkedHashMap keeps keys in insertion order for Keys and MarshalJSON.
// Putting an existing key replaces the value without moving the key.
type LinkedHashMap[K comparable, V any] struct {
	values map[K]V
	keys   []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		values: map[K]V{},
		keys:   []K{},
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.keys)
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	return ShallowCopy(r.keys)
}

func (r *LinkedHashMap[K, V]) Put(key K, value V) *LinkedHashMap[K, V] {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.values[key]
	return value, ok
}

// MarshalJSON writes an object whose members follow Keys. Non-string keys
// are written in their fmt.Sprint form.
func (r LinkedHashMap[K, V]) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		keyBs, err := json.Marshal(fmt.Sprint(key))
		if err != nil {
			return nil, errors.Wrapf(err, "LinkedHashMap.MarshalJSON error marshalling key %v", key)
		}
		valueBs, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, errors.Wrapf(err, "LinkedHashMap.MarshalJSON error marshalling value of key %v", key)
		}
		sb.Write(keyBs)
		sb.WriteByte(':')
		sb.Write(valueBs)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}
