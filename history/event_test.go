package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent(t *testing.T) {
	tests := []struct {
		event   Event
		keyword string
		abbrev  string
		image   RowImage
	}{
		{Insert, "INSERT", "INS", New},
		{Update, "UPDATE", "UPD", New},
		{Delete, "DELETE", "DEL", Old},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.keyword, tt.event.String())
			assert.Equal(t, tt.abbrev, tt.event.Abbrev())
			assert.Equal(t, tt.image, tt.event.Image())
		})
	}

	t.Run("every_event_has_an_image", func(t *testing.T) {
		for _, event := range Events {
			assert.NotEmpty(t, event.Image())
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", Event(7).String())
		assert.Empty(t, Event(-1).Image())
	})
}
