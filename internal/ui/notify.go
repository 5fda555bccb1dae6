package ui

// notices bridges engine notifications into the program loop. Sends never
// block; when the program is busy the oldest pending notice is dropped.
type notices struct {
	ch chan noticeMsg
}

func newNotices() *notices {
	return &notices{ch: make(chan noticeMsg, 8)}
}

func (n *notices) Info(msg string) { n.send(noticeMsg{text: msg}) }
func (n *notices) Warn(msg string) { n.send(noticeMsg{text: msg, warn: true}) }

func (n *notices) send(m noticeMsg) {
	select {
	case n.ch <- m:
	default:
		select {
		case <-n.ch:
		default:
		}
		select {
		case n.ch <- m:
		default:
		}
	}
}
