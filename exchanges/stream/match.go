package stream

// pending maps request ids to their reply channels. It is owned by the
// connection loop and is never touched from another goroutine, so it carries
// no lock.
type pending map[string]chan reply

// set registers a reply channel, refusing an id that is already waiting
func (p pending) set(id string, ch chan reply) bool {
	if _, ok := p[id]; ok {
		return false
	}
	p[id] = ch
	return true
}

// fulfil delivers data to the waiter registered under id and removes the
// entry. Reply channels hold one value so this never blocks, even when the
// waiter has gone away.
func (p pending) fulfil(id string, data []byte) bool {
	ch, ok := p[id]
	if !ok {
		return false
	}
	delete(p, id)
	ch <- reply{data: data}
	return true
}

// drain closes every reply channel. Waiters observe the closed channel as
// cancellation.
func (p pending) drain() {
	for id, ch := range p {
		close(ch)
		delete(p, id)
	}
}
