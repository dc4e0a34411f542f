// Package send contains test fixtures for channel sends.
package send

import "code.hybscloud.com/conslist"

// ===== SHOULD REPORT =====

func badSendList(l *conslist.List[int], ch chan *conslist.List[int]) {
	ch <- l // want `conslist.List sent on channel`
}

func badSendRef(r conslist.Ref[int], ch chan conslist.Ref[int]) {
	ch <- r // want `conslist.Ref sent on channel`
}

func badSendDbg(l *conslist.List[int], ch chan any) {
	ch <- l.Debug() // want `conslist.Dbg sent on channel`
}

// ===== SHOULD NOT REPORT =====

func goodSendValue(l *conslist.List[int], ch chan int) {
	h, _ := l.Head()
	ch <- h
}
