package dispatcher

// PostDispatchHook is called after every dispatch with the action's error.
type PostDispatchHook interface {
	PostDispatch(action Action, err error)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(action Action, err error)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action Action, err error) {
	f(action, err)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.postHooks = append(d.postHooks, hook)
}

func (d *Dispatcher) runPostHooks(action Action, err error) {
	for _, h := range d.postHooks {
		h.PostDispatch(action, err)
	}
}
