package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaption_Validate(t *testing.T) {
	t.Run("should validate a properly constructed Caption", func(t *testing.T) {
		// Arrange
		cap := Caption{
			ID:        "cap-1",
			SegmentID: "seg-1",
			Text:      "hi there",
			StartTime: 2.0,
			EndTime:   4.0,
			Words: []Word{
				{Text: "hi", StartTime: 2.0, EndTime: 3.0},
				{Text: "there", StartTime: 3.0, EndTime: 4.0},
			},
		}

		// Act
		err := cap.Validate()

		// Assert
		assert.NoError(t, err, "should not return error for valid Caption")
	})

	t.Run("should return error for empty ID", func(t *testing.T) {
		cap := Caption{SegmentID: "seg-1", StartTime: 0, EndTime: 1}

		err := cap.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ID cannot be empty")
	})

	t.Run("should return error for empty segmentId", func(t *testing.T) {
		cap := Caption{ID: "cap-1", StartTime: 0, EndTime: 1}

		err := cap.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "segmentId cannot be empty")
	})

	t.Run("should return error when endTime is not after startTime", func(t *testing.T) {
		cap := Caption{ID: "cap-1", SegmentID: "seg-1", StartTime: 2.0, EndTime: 2.0}

		err := cap.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "endTime must be greater than startTime")
	})

	t.Run("should return error for an invalid word", func(t *testing.T) {
		cap := Caption{
			ID:        "cap-1",
			SegmentID: "seg-1",
			StartTime: 0,
			EndTime:   2,
			Words:     []Word{{Text: "", StartTime: 0, EndTime: 1}},
		}

		err := cap.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "word 0")
	})

	t.Run("should not enforce word containment within the caption range", func(t *testing.T) {
		// fuzzy word boundaries from transcription are tolerated
		cap := Caption{
			ID:        "cap-1",
			SegmentID: "seg-1",
			StartTime: 1.0,
			EndTime:   2.0,
			Words:     []Word{{Text: "late", StartTime: 1.9, EndTime: 2.4}},
		}

		assert.NoError(t, cap.Validate())
	})
}

func TestWord_Validate(t *testing.T) {
	t.Run("should return error for negative startTime", func(t *testing.T) {
		w := Word{Text: "hi", StartTime: -0.5, EndTime: 1.0}

		err := w.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "startTime cannot be negative")
	})

	t.Run("should return error for zero-length word", func(t *testing.T) {
		w := Word{Text: "hi", StartTime: 1.0, EndTime: 1.0}

		assert.Error(t, w.Validate())
	})
}

func TestCaption_Contains(t *testing.T) {
	cap := Caption{ID: "c", SegmentID: "s", StartTime: 2.0, EndTime: 4.0}

	assert.True(t, cap.Contains(2.0), "range start is inclusive")
	assert.True(t, cap.Contains(3.0))
	assert.True(t, cap.Contains(4.0), "range end is inclusive")
	assert.False(t, cap.Contains(1.999))
	assert.False(t, cap.Contains(4.001))
}

func TestCaption_WordAt(t *testing.T) {
	cap := Caption{
		Words: []Word{
			{Text: "hi", StartTime: 2.0, EndTime: 3.0},
			{Text: "there", StartTime: 3.0, EndTime: 4.0},
		},
	}

	assert.Equal(t, 0, cap.WordAt(2.5))
	assert.Equal(t, 0, cap.WordAt(3.0), "first match wins on shared boundary")
	assert.Equal(t, 1, cap.WordAt(3.5))
	assert.Equal(t, -1, cap.WordAt(5.0))
}

func TestJoinWords(t *testing.T) {
	words := []Word{
		{Text: "hi", StartTime: 0, EndTime: 1},
		{Text: "there", StartTime: 1, EndTime: 2},
	}

	assert.Equal(t, "hi there", JoinWords(words))
	assert.Equal(t, "", JoinWords(nil))
}

func TestSortByStart(t *testing.T) {
	captions := []Caption{
		{ID: "b", StartTime: 3.0},
		{ID: "a", StartTime: 1.0},
		{ID: "c", StartTime: 3.0},
	}

	SortByStart(captions)

	assert.Equal(t, "a", captions[0].ID)
	assert.Equal(t, "b", captions[1].ID, "stable sort keeps shared-start order")
	assert.Equal(t, "c", captions[2].ID)
}

func TestNew(t *testing.T) {
	cap := New("seg-1", "hello", 1.0, 2.0, nil)

	assert.NotEmpty(t, cap.ID)
	assert.Equal(t, "seg-1", cap.SegmentID)
	assert.NoError(t, cap.Validate())

	other := New("seg-1", "hello", 1.0, 2.0, nil)
	assert.NotEqual(t, cap.ID, other.ID, "each caption gets a unique ID")
}
