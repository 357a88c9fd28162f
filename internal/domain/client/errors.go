package client

import "errors"

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvalidTransition = errors.New("invalid contract status transition")
)
