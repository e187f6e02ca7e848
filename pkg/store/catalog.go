package store

import (
	"context"
	"time"

	"tableflip.dev/missioncontrol/pkg/agent"
	"tableflip.dev/missioncontrol/pkg/calendar"
	"tableflip.dev/missioncontrol/pkg/memory"
	"tableflip.dev/missioncontrol/pkg/task"
	"tableflip.dev/missioncontrol/pkg/team"
)

// Catalog is the read contract for dashboard data. Every call returns a fresh
// copy so callers can keep their own view state.
type Catalog interface {
	Tasks(ctx context.Context) []task.Task
	Events(ctx context.Context) []calendar.Event
	Memories(ctx context.Context) []memory.Record
	OfficeAgents(ctx context.Context) []agent.Agent
	SubAgents(ctx context.Context) []agent.SubAgent
	Team(ctx context.Context) []team.Member
}

// DemoDate is the fixed "today" of the sample data set.
var DemoDate = time.Date(2026, time.February, 21, 0, 0, 0, 0, time.Local)

// Fixed returns the built-in sample catalog. now stamps the sub-agent's last
// activity; a nil now uses time.Now.
func Fixed(now func() time.Time) Catalog {
	if now == nil {
		now = time.Now
	}
	return &fixed{now: now}
}

type fixed struct {
	now func() time.Time
}

func due(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func (f *fixed) Tasks(_ context.Context) []task.Task {
	return []task.Task{
		{ID: "1", Title: "Complete Gate 1B - Calendar Spreads Backtest", Assignee: task.Tony, Status: task.Progress, Priority: task.High, Due: due(2026, time.February, 22)},
		{ID: "2", Title: "Complete Gate 1C - Earnings Spreads Backtest", Assignee: task.Tony, Status: task.Progress, Priority: task.High, Due: due(2026, time.February, 22)},
		{ID: "3", Title: "Complete Gate 1D - Covered Call Wheel Backtest", Assignee: task.Tony, Status: task.Backlog, Priority: task.High, Due: due(2026, time.February, 23)},
		{ID: "4", Title: "Setup Paper Trading Infrastructure", Assignee: task.Tony, Status: task.Backlog, Priority: task.High, Due: due(2026, time.February, 28)},
		{ID: "5", Title: "Review Phase 1 Results & Approve Phase 2", Assignee: task.Shimonez, Status: task.Backlog, Priority: task.High, Due: due(2026, time.February, 28)},
	}
}

func (f *fixed) Events(_ context.Context) []calendar.Event {
	return []calendar.Event{
		{Day: 22, Title: "Gate 1B & 1C Due", Category: calendar.Backtest},
		{Day: 23, Title: "Gate 1D Due", Category: calendar.Backtest},
		{Day: 28, Title: "Phase 1 Closeout", Category: calendar.Review},
		{Day: 1, Title: "Phase 2 Forward Test Begins", Category: calendar.Paper},
	}
}

func (f *fixed) Memories(_ context.Context) []memory.Record {
	return []memory.Record{
		{
			ID:     "1",
			Title:  "Iron Condor Strategy - VALIDATED",
			Body:   "Iron Condor (SPY/QQQ) - 475 trades, 86.7% win rate, $1,122 P&L, walk-forward +$119. Ready for Phase 2 deployment.",
			Tags:   []string{"Strategy", "Performance"},
			Date:   "2026-02-20",
			Source: "MEMORY.md",
		},
		{
			ID:     "2",
			Title:  "Stocks-Only Pivot Decision",
			Body:   "Crypto grid trading REJECTED after testing all parameters. BTC: -$114K loss, ETH: -$2.5K loss. Switching to 4-strategy stocks portfolio.",
			Tags:   []string{"Decision", "Strategy"},
			Date:   "2026-02-20",
			Source: "MEMORY.md",
		},
		{
			ID:     "3",
			Title:  "Phase 1 Backtest Progress",
			Body:   "Gate 1A (Iron Condor): PASSED. Gates 1B (Calendar Spreads), 1C (Earnings), 1D (Covered Call) in progress. Deadline: Feb 23.",
			Tags:   []string{"Strategy", "Performance"},
			Date:   "2026-02-21",
			Source: "memory/2026-02-21.md",
		},
		{
			ID:     "4",
			Title:  "Daily Financial Tracking Automated",
			Body:   "Daily invoice scanner deployed. 6 Anthropic invoices scanned ($150 each = $900 total). Cost tracking: ~$12.75/day burn.",
			Tags:   []string{"Alert", "Performance"},
			Date:   "2026-02-21",
			Source: "memory/2026-02-21.md",
		},
	}
}

func (f *fixed) OfficeAgents(_ context.Context) []agent.Agent {
	return []agent.Agent{
		{ID: "1", Name: "Tony", Avatar: "🤖", Activity: "Optimizing Gate 1B (Calendar Spreads)", Status: agent.Working, Progress: 65, Desk: 1},
		{ID: "2", Name: "Backtest Runner", Avatar: "📊", Activity: "Running parameter grid search", Status: agent.Working, Progress: 42, Desk: 2},
		{ID: "3", Name: "Financial Auditor", Avatar: "💳", Activity: "Scanning invoices & updating spreadsheet", Status: agent.Working, Progress: 88, Desk: 3},
		{ID: "4", Name: "Deployment Manager", Avatar: "🚀", Activity: "Monitoring Phase 1 timeline adherence", Status: agent.Working, Progress: 55, Desk: 4},
		{ID: "5", Name: "Paper Trader", Avatar: "📈", Activity: "Idle - waiting for paper trading phase", Status: agent.Idle, Progress: 0, Desk: 5},
	}
}

func (f *fixed) SubAgents(_ context.Context) []agent.SubAgent {
	return []agent.SubAgent{
		{
			ID:     "trading_advisor",
			Name:   "TRADING ADVISOR",
			Status: agent.Active,
			Skills: []string{
				"Candlestick Pattern Detection",
				"Technical Analysis",
				"Backtest Evaluation",
				"Risk Management",
				"Options Analysis",
			},
			LastActive:  f.now(),
			Description: "Ultra-smart trading advisor with pattern detection and edge validation",
		},
	}
}

func (f *fixed) Team(_ context.Context) []team.Member {
	return []team.Member{
		{ID: "1", Name: "Shimonez (MR-A)", Role: "Co-founder & Strategic Lead", Kind: team.Founder, Responsibilities: []string{"Strategy", "Vision", "Final Decisions", "Partnerships"}, Status: team.Active, Avatar: "👔"},
		{ID: "2", Name: "MR-B", Role: "Co-founder & Finance", Kind: team.Founder, Responsibilities: []string{"Financial Oversight", "Capital Allocation", "Risk Management"}, Status: team.Active, Avatar: "💰"},
		{ID: "3", Name: "Tony (Moti)", Role: "Operations Lead", Kind: team.Agent, Responsibilities: []string{"Bot Optimization", "Backtesting", "Parameter Tuning", "Phase Execution"}, Status: team.Active, Avatar: "🤖"},
		{ID: "4", Name: "Backtest Runner", Role: "Subagent - Parameter Optimization", Kind: team.Agent, Responsibilities: []string{"Daily Backtest Runs", "Grid Search", "Metrics Logging"}, Status: team.Idle, Avatar: "📊"},
		{ID: "5", Name: "Paper Trader", Role: "Subagent - Validation", Kind: team.Agent, Responsibilities: []string{"Paper Trading Execution", "Slippage Analysis", "Win Rate Tracking"}, Status: team.Idle, Avatar: "📈"},
		{ID: "6", Name: "Financial Auditor", Role: "Subagent - Cost Tracking", Kind: team.Agent, Responsibilities: []string{"Invoice Scanning", "P&L Tracking", "Cost Reports"}, Status: team.Active, Avatar: "💳"},
		{ID: "7", Name: "Deployment Manager", Role: "Subagent - Phase Gates", Kind: team.Agent, Responsibilities: []string{"Gate Validation", "Timeline Adherence", "Escalations"}, Status: team.Active, Avatar: "🚀"},
	}
}
