package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		slot string
		want Category
	}{
		{"06:00", CategoryMorning},
		{"08:00", CategoryMorning},
		{"11:30", CategoryMorning},
		{"12:00", CategoryEvening},
		{"17:30", CategoryEvening},
		{"18:00", CategoryNight},
		{"22:00", CategoryNight},
		{"23:30", CategoryNight},
		// antes das 6h também é noite, mesmo que a grade atual
		// nunca produza esses horários
		{"00:00", CategoryNight},
		{"05:30", CategoryNight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.slot), "slot %s", tt.slot)
	}
}

func TestCategorize(t *testing.T) {
	slots := []string{"09:00", "09:30", "12:00", "14:30", "18:00", "21:30"}

	c := Categorize(slots)

	assert.Equal(t, []string{"09:00", "09:30"}, c.Morning)
	assert.Equal(t, []string{"12:00", "14:30"}, c.Evening)
	assert.Equal(t, []string{"18:00", "21:30"}, c.Night)
	assert.Equal(t, slots, c.All())
}

func TestCategorizeEmpty(t *testing.T) {
	c := Categorize(nil)
	assert.Empty(t, c.Morning)
	assert.Empty(t, c.Evening)
	assert.Empty(t, c.Night)
	assert.Empty(t, c.All())
}

func TestStartOffset(t *testing.T) {
	c := Categorize([]string{"09:00", "09:30", "12:00", "18:00", "19:00"})

	assert.Equal(t, 0, c.StartOffset(CategoryMorning))
	assert.Equal(t, 2, c.StartOffset(CategoryEvening))
	assert.Equal(t, 3, c.StartOffset(CategoryNight))
}
