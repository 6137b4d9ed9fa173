package helpers

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONValue bir Go değerini JSONB kolonuna yazılacak driver.Value'ya çevirir.
// Modellerdeki özel slice tiplerinin Value() metodları bunu kullanır.
func JSONValue(v interface{}) (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonb marshal: %w", err)
	}
	return data, nil
}

// JSONScan JSONB kolonundan okunan ham değeri hedef tipe çözer.
func JSONScan(src interface{}, dest interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return errors.New("jsonb scan: beklenmeyen kaynak tipi")
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}
