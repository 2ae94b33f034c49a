package dataset

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения или декодирования файла данных
	ErrLoad = errors.New("dataset: failed to load data file")

	// ErrInvalidTable возвращается при некорректном описании стола
	ErrInvalidTable = errors.New("dataset: invalid table definition")

	// ErrInvalidMenu возвращается при некорректном описании меню
	ErrInvalidMenu = errors.New("dataset: invalid menu definition")
)
