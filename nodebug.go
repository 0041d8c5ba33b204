//go:build !slistdebug

package slist

const debug = false
