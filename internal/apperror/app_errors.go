package apperror

import "errors"

var (
	ErrMalformedCalls    = errors.New("malformed bingo calls")
	ErrMalformedRow      = errors.New("malformed bingo card row")
	ErrInconsistentSize  = errors.New("bingo cards have inconsistent sizes")
	ErrStructuralParse   = errors.New("bingo file has an unexpected structure")
	ErrFileNotFound      = errors.New("bingo file not found")
	ErrInvalidFileID     = errors.New("invalid bingo file id")
	ErrUnknownMarkPolicy = errors.New("unknown mark policy")
	ErrCardTooLarge      = errors.New("card size is bigger than max number")
	ErrResultNotFound    = errors.New("result not found")
	ErrHistoryDisabled   = errors.New("solve history is disabled")
)
