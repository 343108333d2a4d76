package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOrigin     = errors.New("empty origin")
	ErrEmptyChainID    = errors.New("empty chain id")
	ErrEmptySigner     = errors.New("empty signer")
	ErrEmptyData       = errors.New("empty data")
	ErrMissingSignDoc  = errors.New("missing sign doc")
	ErrUnknownType     = errors.New("unknown request type")
	ErrInvalidGrantAge = errors.New("permission granted in the future")
)
