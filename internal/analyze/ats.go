package analyze

import "math/rand/v2"

// ATSScore returns a placeholder applicant-tracking-system score in [60, 100).
// The value is random filler kept for API compatibility with the stored resume
// record; it is NOT a real compatibility metric and must not be interpreted as
// one. A real scoring design would replace this wholesale.
func ATSScore() int {
	return rand.IntN(40) + 60
}
