package urgency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twiced-technology-gmbh/todowatch/internal/date"
)

func at(hour int) time.Time {
	return time.Date(2024, time.January, 1, hour, 0, 0, 0, time.Local)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		due  date.Date
		now  time.Time
		want Category
	}{
		{name: "overdue by two days", due: date.New(2023, time.December, 30), now: at(10), want: Overdue},
		{name: "overdue by one day", due: date.New(2023, time.December, 31), now: at(10), want: Overdue},
		{name: "overdue ignores evening", due: date.New(2023, time.December, 31), now: at(23), want: Overdue},
		{name: "due today morning", due: date.New(2024, time.January, 1), now: at(9), want: DueSoon},
		{name: "due today evening", due: date.New(2024, time.January, 1), now: at(20), want: DueSoon},
		{name: "due tomorrow morning", due: date.New(2024, time.January, 2), now: at(9), want: NotYet},
		{name: "due tomorrow just before evening", due: date.New(2024, time.January, 2), now: at(17), want: NotYet},
		{name: "due tomorrow at six", due: date.New(2024, time.January, 2), now: at(18), want: DueSoon},
		{name: "due tomorrow evening", due: date.New(2024, time.January, 2), now: at(19), want: DueSoon},
		{name: "due in two days evening", due: date.New(2024, time.January, 3), now: at(19), want: NotYet},
		{name: "due next month", due: date.New(2024, time.February, 1), now: at(10), want: NotYet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.due, tt.now))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "overdue", Overdue.String())
	assert.Equal(t, "due-soon", DueSoon.String())
	assert.Equal(t, "not-yet", NotYet.String())
}
