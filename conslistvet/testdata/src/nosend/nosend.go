// Package nosend contains fixtures checked with -sends=false.
package nosend

import "code.hybscloud.com/conslist"

func sendList(l *conslist.List[int], ch chan *conslist.List[int]) {
	ch <- l
}

func captureList(l *conslist.List[int]) {
	go func() { // want `goroutine captures conslist.List "l"`
		_ = l.Len()
	}()
}
