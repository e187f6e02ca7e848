package agent

// Office is the desk board state: the agents and at most one selected agent.
type Office struct {
	agents   []Agent
	selected string
}

// NewOffice builds an office with nothing selected.
func NewOffice(agents []Agent) Office {
	return Office{agents: append([]Agent(nil), agents...)}
}

// Agents returns every agent in desk order.
func (o Office) Agents() []Agent { return append([]Agent(nil), o.agents...) }

// Toggle selects id, or clears the selection when id is already selected.
// Unknown ids leave the office unchanged.
func (o Office) Toggle(id string) Office {
	if o.selected == id {
		o.selected = ""
		return o
	}
	for _, a := range o.agents {
		if a.ID == id {
			o.selected = id
			return o
		}
	}
	return o
}

// Selected returns the selected agent.
func (o Office) Selected() (Agent, bool) {
	if o.selected == "" {
		return Agent{}, false
	}
	for _, a := range o.agents {
		if a.ID == o.selected {
			return a, true
		}
	}
	return Agent{}, false
}

// IsSelected reports whether id is the selected agent.
func (o Office) IsSelected(id string) bool {
	return o.selected != "" && o.selected == id
}

// Feed is the activity feed for the office.
func (o Office) Feed() []Agent { return Feed(o.agents) }
