package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyGormEngine error if config db.gormengine is empty.
	ErrEmptyGormEngine = errors.New("toml config db.gormengine can not be empty")

	// ErrUnknownGormEngine error if config db.gormengine is not sqlite, mysql or postgres.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be sqlite, mysql or postgres")
)
