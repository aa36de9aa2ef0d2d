package entity

import (
	"fmt"
	"time"
)

type Result struct {
	GameID  int     `json:"game_id"`
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
	Err     string  `json:"error,omitempty"`
}

func NewErrorResult(gameID, moves int, err error) Result {
	return Result{
		GameID:  gameID,
		Outcome: Outcome{Status: StatusError},
		Moves:   moves,
		Err:     err.Error(),
	}
}

func (that Result) IsError() bool {
	return that.Err != ""
}

func (that Result) String() string {
	if that.IsError() {
		return "error: " + that.Err
	}

	return that.Outcome.String()
}

// Summary is the report of one orchestration run.
type Summary struct {
	RunID      string     `json:"run_id"`
	Config     GameConfig `json:"config"`
	Games      int        `json:"games"`
	Results    []Result   `json:"results"`
	XWins      int        `json:"x_wins"`
	OWins      int        `json:"o_wins"`
	Draws      int        `json:"draws"`
	Errors     int        `json:"errors"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

func NewSummary(runID string, conf GameConfig, games int, results []Result, startedAt, finishedAt time.Time) *Summary {
	summary := &Summary{
		RunID:      runID,
		Config:     conf,
		Games:      games,
		Results:    results,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	for _, result := range results {
		switch {
		case result.IsError():
			summary.Errors++
		case result.Outcome.Status == StatusDraw:
			summary.Draws++
		case result.Outcome.Winner == PlayerX:
			summary.XWins++
		case result.Outcome.Winner == PlayerO:
			summary.OWins++
		}
	}

	return summary
}

func (that *Summary) Lines() []string {
	lines := make([]string, 0, len(that.Results)+2)
	lines = append(lines, "", "=== Game results ===")
	for _, result := range that.Results {
		lines = append(lines, fmt.Sprintf("Game #%d: %s", result.GameID, result))
	}

	return append(lines, "====================")
}
