package entity

import "time"

type Mode string

const (
	HumanVsHuman Mode = "human_vs_human"
	HumanVsAI    Mode = "human_vs_ai"
	AIVsAI       Mode = "ai_vs_ai"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Controller tags who supplies the moves for a mark.
type Controller int

const (
	ControllerHuman Controller = iota
	ControllerAI
)

func (that Controller) String() string {
	if that == ControllerHuman {
		return "human"
	}

	return "ai"
}

// GameConfig is frozen once setup is done and shared by value with every game of a run.
type GameConfig struct {
	Mode       Mode          `json:"mode"`
	Difficulty Difficulty    `json:"difficulty"`
	Delay      time.Duration `json:"delay"`
	HumanMark  Mark          `json:"human_mark,omitempty"`
}

func NewGameConfig(mode Mode, difficulty Difficulty, delay time.Duration, humanMark Mark) GameConfig {
	if mode != HumanVsAI || !humanMark.IsPlayer() {
		humanMark = PlayerX
	}

	if delay < 0 {
		delay = 0
	}

	return GameConfig{
		Mode:       mode,
		Difficulty: difficulty,
		Delay:      delay,
		HumanMark:  humanMark,
	}
}

// Controller decides which kind of provider moves for the given mark.
func (that GameConfig) Controller(mark Mark) Controller {
	switch that.Mode {
	case HumanVsHuman:
		return ControllerHuman
	case HumanVsAI:
		if mark == that.HumanMark {
			return ControllerHuman
		}
		return ControllerAI
	default:
		return ControllerAI
	}
}
