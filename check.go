package slist

// check panics with msg when cond is false. It is a no-op unless built with
// the slistdebug tag.
func check(cond bool, msg string) {
	if debug && !cond {
		panic("slist: " + msg)
	}
}
