package config

import "errors"

var (
	ErrConfig = errors.New("bad system config")
)
