// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn stores a Go value as JSON text. Postgres JSONB columns return
// []byte through pgx while SQLite TEXT columns return string, so Scan
// accepts both.
type jsonColumn[T any] struct {
	dst *T
}

func asJSON[T any](dst *T) jsonColumn[T] {
	return jsonColumn[T]{dst: dst}
}

// Value implements [driver.Valuer].
func (j jsonColumn[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.dst)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return string(data), nil
}

// Scan implements [sql.Scanner].
func (j jsonColumn[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		var zero T
		*j.dst = zero
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	if err := json.Unmarshal(data, j.dst); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}
