package optional

import (
	"bytes"
	"database/sql"

	jsoniter "github.com/json-iterator/go"
)

// Bool sql.NullBoolのラッパー
type Bool struct {
	sql.NullBool
}

func BoolFrom(v bool) Bool {
	return NewBool(v, true)
}

func NewBool(v bool, valid bool) Bool {
	return Bool{NullBool: sql.NullBool{Bool: v, Valid: valid}}
}

func (b Bool) ValueOrZero() bool {
	if b.Valid {
		return b.Bool
	}
	return false
}

func (b Bool) ValueOrDefault(def bool) bool {
	if b.Valid {
		return b.Bool
	}
	return def
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		b.Bool, b.Valid = false, false
		return nil
	}

	if err := jsoniter.ConfigFastest.Unmarshal(data, &b.Bool); err != nil {
		return err
	}

	b.Valid = true
	return nil
}

func (b Bool) MarshalJSON() ([]byte, error) {
	if b.Valid {
		if b.Bool {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	}
	return []byte("null"), nil
}
