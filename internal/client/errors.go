package client

import "errors"

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrInvalidWords = errors.New("mnemonic length must be 12 or 24 words")
	ErrInvalidDoc   = errors.New("invalid sign doc")
)
