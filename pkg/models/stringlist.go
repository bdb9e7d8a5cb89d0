package models

import (
	"database/sql/driver"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// StringList is an ordered list of strings stored as JSON in a TEXT column.
// It marshals to [] rather than null so API responses always carry a list.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		if v == "" {
			*l = StringList{}
			return nil
		}
		return errors.WithStack(json.Unmarshal([]byte(v), (*[]string)(l)))
	case []byte:
		if len(v) == 0 {
			*l = StringList{}
			return nil
		}
		return errors.WithStack(json.Unmarshal(v, (*[]string)(l)))
	}
	return errors.Errorf("unsupported type %T for StringList", src)
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	return b, errors.WithStack(err)
}
