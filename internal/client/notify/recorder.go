package notify

import "sync"

type Notification struct {
	Kind    Kind
	ID      string
	Message string
}

// Recorder keeps every notification in memory. Useful in tests and for
// headless callers that render later.
type Recorder struct {
	mu  sync.Mutex
	all []Notification
}

func (r *Recorder) Loading(id, msg string) { r.add(KindLoading, id, msg) }
func (r *Recorder) Success(id, msg string) { r.add(KindSuccess, id, msg) }
func (r *Recorder) Error(id, msg string)   { r.add(KindError, id, msg) }

func (r *Recorder) add(k Kind, id, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, Notification{Kind: k, ID: id, Message: msg})
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.all...)
}

// Of returns the notifications of kind k in arrival order.
func (r *Recorder) Of(k Kind) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notification
	for _, n := range r.all {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

// Latest returns the last notification for id, the way a keyed toast shows
// only its newest state.
func (r *Recorder) Latest(id string) (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.all) - 1; i >= 0; i-- {
		if r.all[i].ID == id {
			return r.all[i], true
		}
	}
	return Notification{}, false
}
