package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол с указанным id не найден в реестре
	ErrTableNotFound = errors.New("tables.registry: table not found")
)
