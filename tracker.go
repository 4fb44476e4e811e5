package modec

// tracker holds the single terminal failure of one decode attempt.
//
// fail overwrites unconditionally: when several required fields fail during
// one model construction, the most recently recorded failure is the one that
// surfaces (last-writer-wins). There is no un-fail operation.
type tracker struct {
	failed bool
	key    string
	raw    any
	hasRaw bool
}

func (t *tracker) fail(key string, raw any, hasRaw bool) {
	t.failed = true
	t.key = key
	t.raw = raw
	t.hasRaw = hasRaw
}
