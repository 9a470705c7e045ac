package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples builds a decoded value list the way YAML/JSON decoders produce them.
func samples(xs ...float64) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func TestForFormat(t *testing.T) {
	for _, id := range []int{0, 1, 2, 3} {
		m, err := ForFormat(id)
		require.NoError(t, err)
		assert.NotNil(t, m)
	}

	_, err := ForFormat(4)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = ForFormat(-1)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFlatMerger(t *testing.T) {
	t.Run("TwoFiles", func(t *testing.T) {
		files := []Document{
			map[string]any{"a": samples(1, 2)},
			map[string]any{"a": samples(3, 4)},
		}

		res, err := flatMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Nil(t, res.Header)

		row := res.Rows[0]
		assert.Equal(t, "a", row.Key)
		require.Len(t, row.Stats, 2)
		assert.InDelta(t, 2.5, row.Stats[0], 1e-12)
		assert.InDelta(t, 1.118033988749895, row.Stats[1], 1e-12)
	})

	t.Run("SingleFileRepeatedValue", func(t *testing.T) {
		files := []Document{
			map[string]any{"k": samples(5, 5, 5)},
		}

		res, err := flatMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.InDelta(t, 5.0, res.Rows[0].Stats[0], 1e-12)
		assert.InDelta(t, 0.0, res.Rows[0].Stats[1], 1e-12)
	})

	t.Run("RowsSortedByKey", func(t *testing.T) {
		files := []Document{
			map[string]any{"b": samples(1), "a": samples(2), "c": samples(3)},
		}

		res, err := flatMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 3)
		assert.Equal(t, "a", res.Rows[0].Key)
		assert.Equal(t, "b", res.Rows[1].Key)
		assert.Equal(t, "c", res.Rows[2].Key)
	})

	t.Run("UnevenListLengthsAllowed", func(t *testing.T) {
		files := []Document{
			map[string]any{"a": samples(1)},
			map[string]any{"a": samples(2, 3, 4)},
		}

		res, err := flatMerger{}.Merge(files, nil)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, res.Rows[0].Stats[0], 1e-12)
	})

	t.Run("FeaturesRejected", func(t *testing.T) {
		files := []Document{map[string]any{"a": samples(1)}}
		_, err := flatMerger{}.Merge(files, []string{"a,b"})
		assert.ErrorIs(t, err, ErrFeatureNotAllowed)
	})

	t.Run("KeyMismatch", func(t *testing.T) {
		files := []Document{
			map[string]any{"a": samples(1)},
			map[string]any{"b": samples(2)},
		}
		_, err := flatMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrKeyMismatch)
	})

	t.Run("NonNumericSample", func(t *testing.T) {
		files := []Document{
			map[string]any{"a": []any{"oops"}},
		}
		_, err := flatMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})
}

func TestNearestMerger(t *testing.T) {
	t.Run("NearestKeysPooled", func(t *testing.T) {
		files := []Document{
			map[string]any{"0": samples(1), "5": samples(2)},
			map[string]any{"0": samples(3), "6": samples(4)},
		}

		res, err := nearestMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 2)
		assert.Nil(t, res.Header)

		// canonical keys come from the first file
		assert.Equal(t, 0, res.Rows[0].Key)
		assert.Equal(t, 5, res.Rows[1].Key)

		// key 0 pools [1 3], key 5 matches 6 in file 2 and pools [2 4]
		assert.InDelta(t, 2.0, res.Rows[0].Stats[0], 1e-12)
		assert.InDelta(t, 1.0, res.Rows[0].Stats[1], 1e-12)
		assert.InDelta(t, 3.0, res.Rows[1].Stats[0], 1e-12)
		assert.InDelta(t, 1.0, res.Rows[1].Stats[1], 1e-12)
	})

	t.Run("KeyCountMismatch", func(t *testing.T) {
		files := []Document{
			map[string]any{"0": samples(1), "5": samples(2)},
			map[string]any{"0": samples(3)},
		}
		_, err := nearestMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrKeyCountMismatch)
	})

	t.Run("FeaturesRejected", func(t *testing.T) {
		files := []Document{map[string]any{"0": samples(1)}}
		_, err := nearestMerger{}.Merge(files, []string{"x"})
		assert.ErrorIs(t, err, ErrFeatureNotAllowed)
	})
}

func TestColumnsMerger(t *testing.T) {
	t.Run("PerColumnStats", func(t *testing.T) {
		files := []Document{
			map[string]any{
				"0":  []any{samples(1, 10), samples(3, 30)},
				"10": []any{samples(5, 50)},
			},
			map[string]any{
				"0":  []any{samples(5, 50)},
				"11": []any{samples(7, 70)},
			},
		}

		res, err := columnsMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 2)

		// key 0: column 0 pools [1 3 5], column 1 pools [10 30 50]
		row := res.Rows[0]
		assert.Equal(t, 0, row.Key)
		require.Len(t, row.Stats, 4)
		assert.InDelta(t, 3.0, row.Stats[0], 1e-12)
		assert.InDelta(t, 30.0, row.Stats[2], 1e-12)

		// key 10 matches 11 in file 2: column 0 pools [5 7]
		row = res.Rows[1]
		assert.Equal(t, 10, row.Key)
		assert.InDelta(t, 6.0, row.Stats[0], 1e-12)
		assert.InDelta(t, 1.0, row.Stats[1], 1e-12)
	})

	t.Run("RowLengthIsTwiceColumnCount", func(t *testing.T) {
		files := []Document{
			map[string]any{"0": []any{samples(1, 2, 3)}},
		}

		res, err := columnsMerger{}.Merge(files, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Len(t, res.Rows[0].Stats, 6)
	})

	t.Run("ColumnCountMismatch", func(t *testing.T) {
		files := []Document{
			map[string]any{"0": []any{samples(1, 2)}},
			map[string]any{"0": []any{samples(1, 2, 3)}},
		}
		_, err := columnsMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrColumnCountMismatch)
	})

	t.Run("MismatchWithinOneKey", func(t *testing.T) {
		files := []Document{
			map[string]any{"0": []any{samples(1, 2), samples(3)}},
		}
		_, err := columnsMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrColumnCountMismatch)
	})

	t.Run("FeaturesRejected", func(t *testing.T) {
		files := []Document{map[string]any{"0": []any{samples(1)}}}
		_, err := columnsMerger{}.Merge(files, []string{"x"})
		assert.ErrorIs(t, err, ErrFeatureNotAllowed)
	})
}

func TestStepsMerger(t *testing.T) {
	step := func(loss, reward float64) any {
		return map[string]any{
			"metrics": map[string]any{"loss": loss},
			"reward":  reward,
		}
	}

	t.Run("PerStepStats", func(t *testing.T) {
		files := []Document{
			[]any{step(1, 10), step(3, 30)},
			[]any{step(5, 50), step(7, 70)},
		}

		res, err := stepsMerger{}.Merge(files, []string{"metrics,loss", "reward"})
		require.NoError(t, err)
		assert.Equal(t, []string{"loss", "reward"}, res.Header)
		require.Len(t, res.Rows, 2)

		// step 0: loss across files is [1 5], reward [10 50]
		row := res.Rows[0]
		assert.Equal(t, 0, row.Key)
		require.Len(t, row.Stats, 4)
		assert.InDelta(t, 3.0, row.Stats[0], 1e-12)
		assert.InDelta(t, 2.0, row.Stats[1], 1e-12)
		assert.InDelta(t, 30.0, row.Stats[2], 1e-12)
		assert.InDelta(t, 20.0, row.Stats[3], 1e-12)

		row = res.Rows[1]
		assert.Equal(t, 1, row.Key)
		assert.InDelta(t, 5.0, row.Stats[0], 1e-12)
	})

	t.Run("HeaderMatchesFeatureCount", func(t *testing.T) {
		files := []Document{[]any{step(1, 2)}}

		res, err := stepsMerger{}.Merge(files, []string{"reward"})
		require.NoError(t, err)
		assert.Len(t, res.Header, 1)
		assert.Len(t, res.Rows[0].Stats, 2)
	})

	t.Run("StepCountMismatch", func(t *testing.T) {
		files := []Document{
			[]any{step(1, 2)},
			[]any{step(1, 2), step(3, 4)},
		}
		_, err := stepsMerger{}.Merge(files, []string{"reward"})
		assert.ErrorIs(t, err, ErrStepCountMismatch)
	})

	t.Run("MissingFeatures", func(t *testing.T) {
		files := []Document{[]any{step(1, 2)}}
		_, err := stepsMerger{}.Merge(files, nil)
		assert.ErrorIs(t, err, ErrFeatureNotAllowed)
	})

	t.Run("PathNotFound", func(t *testing.T) {
		files := []Document{[]any{step(1, 2)}}
		_, err := stepsMerger{}.Merge(files, []string{"metrics,accuracy"})
		assert.ErrorIs(t, err, ErrPathNotFound)
	})
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, mean, 1e-12)
	assert.InDelta(t, 1.118033988749895, std, 1e-12)

	mean, std = meanStd([]float64{7})
	assert.InDelta(t, 7.0, mean, 1e-12)
	assert.InDelta(t, 0.0, std, 1e-12)
}
