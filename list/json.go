package list

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/quintans/slist/internal/lib/fails"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("invalid json")
	ErrNotArray    = errors.New("json value is not an array")
)

// MarshalJSON encodes the list as a JSON array, front to back.
func (l List[T]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	i := 0
	for n := l.head; n != nil; n = n.Next {
		data, err := json.Marshal(n.Value)
		if err != nil {
			return nil, fails.NewWithErr(err, "marshalling list item", "index", i)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(data)
		i++
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of the list with the elements of a JSON
// array. null leaves the list empty. On error the list is not modified.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fails.NewWithErr(ErrInvalidJSON, "unmarshalling list")
	}

	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		l.Clear()
		return nil
	}
	if !res.IsArray() {
		return fails.NewWithErr(ErrNotArray, "unmarshalling list", "type", res.Type.String())
	}

	decoded := New[T]()
	var tail *node[T]
	var err error
	i := 0
	res.ForEach(func(_, value gjson.Result) bool {
		var item T
		if e := json.Unmarshal([]byte(value.Raw), &item); e != nil {
			err = fails.NewWithErr(e, "unmarshalling list item", "index", i)
			return false
		}
		nd := &node[T]{Value: item}
		if tail == nil {
			decoded.head = nd
		} else {
			tail.Next = nd
		}
		tail = nd
		decoded.size++
		i++
		return true
	})
	if err != nil {
		return err
	}

	l.Clear()
	l.head, l.size = decoded.head, decoded.size
	return nil
}
