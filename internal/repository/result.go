package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type ResultRepository interface {
	Save(result entity.Result) error
	Sorted() []entity.Result
	Len() int
}

// resultTable is written concurrently by the games of one run and read once after they all finished.
// Every game saves exactly once, when it reaches a final state.
type resultTable struct {
	mu      sync.Mutex
	results map[int]entity.Result
}

func NewResultTable() ResultRepository {
	return &resultTable{
		results: make(map[int]entity.Result),
	}
}

func (that *resultTable) Save(result entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.results[result.GameID]; ok {
		return fmt.Errorf("%w: game %d", apperror.ErrResultExists, result.GameID)
	}

	that.results[result.GameID] = result

	return nil
}

// Sorted returns the results in ascending game id order.
func (that *resultTable) Sorted() []entity.Result {
	that.mu.Lock()
	defer that.mu.Unlock()

	results := make([]entity.Result, 0, len(that.results))
	for _, result := range that.results {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].GameID < results[j].GameID
	})

	return results
}

func (that *resultTable) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.results)
}
