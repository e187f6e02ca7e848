// Package team is the roster of founders and agents.
package team

// Kind splits the roster into its two display groups.
type Kind string

const (
	Founder Kind = "founder"
	Agent   Kind = "agent"
)

// Status of a team member.
type Status string

const (
	Active Status = "active"
	Idle   Status = "idle"
)

// Member is one person or agent on the team.
type Member struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Kind             Kind     `json:"type"`
	Responsibilities []string `json:"responsibilities"`
	Status           Status   `json:"status"`
	Avatar           string   `json:"avatar"`
}

// Partition returns the founders and the agents, each in roster order.
func Partition(members []Member) (founders, agents []Member) {
	for _, m := range members {
		switch m.Kind {
		case Founder:
			founders = append(founders, m)
		case Agent:
			agents = append(agents, m)
		}
	}
	return founders, agents
}
