package logging

import (
	stderrs "errors"
	"fmt"

	smerrors "github.com/Station-Manager/errors"
)

// Error kinds surfaced by Initialize. At the command boundary they collapse
// into a single message; inside the process use HasKind to tell them apart.
var (
	ErrDirectory       = stderrs.New("log directory")
	ErrIO              = stderrs.New("log file i/o")
	ErrDispatch        = stderrs.New("log dispatcher")
	ErrLockPoisoned    = stderrs.New("logger lock poisoned")
	ErrInvalidSettings = stderrs.New("logger settings")
)

const maxChainDepth = 50

// kindError tags cause with kind so both stay reachable through errors.Is.
func kindError(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// HasKind reports whether kind appears anywhere in err's cause chain,
// following Station-Manager DetailedError causes as well as stdlib wrapping.
func HasKind(err, kind error) bool {
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if stderrs.Is(err, kind) {
			return true
		}
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			err = dErr.Cause()
			continue
		}
		err = stderrs.Unwrap(err)
	}
	return false
}

// flatten turns err into the single string-typed failure the UI receives.
func flatten(err error) error {
	if err == nil {
		return nil
	}
	chain, _ := buildErrorChain(err)
	if len(chain) == 0 {
		return stderrs.New(err.Error())
	}
	return stderrs.New(joinChain(chain))
}
