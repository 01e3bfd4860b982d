package workflow

// Stack is the navigation path: a plain LIFO sequence of routes on top of
// the implicit login root. Pushing a route equal to the current top
// collapses into a single entry, which keeps re-derivations of the same
// selection from stacking up.
type Stack struct {
	entries []Route
}

func NewStack() *Stack {
	return &Stack{}
}

// Navigate appends a route, unless it equals the current top entry.
func (s *Stack) Navigate(route Route) {
	if len(s.entries) > 0 && Equal(s.entries[len(s.entries)-1], route) {
		return
	}

	s.entries = append(s.entries, route)
}

// GoBack pops the last entry. No-op on an empty stack.
func (s *Stack) GoBack() {
	if len(s.entries) == 0 {
		return
	}

	s.entries = s.entries[:len(s.entries)-1]
}

// GoToRoot clears the stack back to the initial login state.
func (s *Stack) GoToRoot() {
	s.entries = nil
}

// Current returns the top route, or Login when the stack is empty.
func (s *Stack) Current() Route {
	if len(s.entries) == 0 {
		return Login
	}

	return s.entries[len(s.entries)-1]
}

func (s *Stack) Depth() int {
	return len(s.entries)
}

// Routes returns a copy of the stack, bottom first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.entries))
	copy(routes, s.entries)

	return routes
}
