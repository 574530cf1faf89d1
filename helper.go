package logging

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// buildErrorChain walks an error's cause chain and returns the messages from
// outermost to innermost, plus the innermost one as root.
//
// Station-Manager DetailedError.Cause() is followed first, then stdlib
// errors.Unwrap. Depth is capped and a repeated message stops the walk.
func buildErrorChain(err error) (chain []string, root string) {
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxChainDepth {
		visited++

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	return strings.Join(chain, " -> ")
}
