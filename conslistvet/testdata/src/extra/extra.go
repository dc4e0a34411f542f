// Package extra contains fixtures for the -confined flag.
package extra

type Session struct{}

type Other struct{}

func badSession(s *Session) {
	go func() { // want `goroutine captures extra.Session "s"`
		_ = s
	}()
}

func badSessionSend(s Session, ch chan Session) {
	ch <- s // want `extra.Session sent on channel`
}

func goodOther(o *Other) {
	go func() {
		_ = o
	}()
}
