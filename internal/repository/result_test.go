package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

func TestResultTable_Save(t *testing.T) {
	t.Run("Concurrent saves are all kept", func(t *testing.T) {
		// Given: an empty table
		table := NewResultTable()

		// When: 50 games save their results at the same time
		var wg sync.WaitGroup
		for id := 50; id >= 1; id-- {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := table.Save(entity.Result{GameID: id, Outcome: entity.Outcome{Status: entity.StatusDraw}})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then: every id is present once and in ascending order
		results := table.Sorted()
		require.Len(t, results, 50)
		assert.Equal(t, 50, table.Len())
		for i, result := range results {
			assert.Equal(t, i+1, result.GameID)
		}
	})

	t.Run("Second save for the same game is rejected", func(t *testing.T) {
		table := NewResultTable()
		first := entity.Result{GameID: 1, Outcome: entity.Outcome{Status: entity.StatusWin, Winner: entity.PlayerX}}

		require.NoError(t, table.Save(first))
		err := table.Save(entity.NewErrorResult(1, 3, errors.New("boom")))

		require.ErrorIs(t, err, apperror.ErrResultExists)
		assert.Equal(t, []entity.Result{first}, table.Sorted())
	})
}

func TestResultTable_SortedOnEmptyTable(t *testing.T) {
	table := NewResultTable()

	assert.Empty(t, table.Sorted())
	assert.Zero(t, table.Len())
}
