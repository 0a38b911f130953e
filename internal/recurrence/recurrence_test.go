package recurrence

import (
	"testing"
	"time"

	"github.com/hearthhq/hearth-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		scheduled time.Time
		freq      domain.Frequency
		after     time.Time
		want      time.Time
	}{
		{
			name:      "weekly advances one week",
			scheduled: date(2024, 1, 1),
			freq:      domain.FrequencyWeekly,
			after:     date(2024, 1, 1),
			want:      date(2024, 1, 8),
		},
		{
			name:      "daily advances one day",
			scheduled: date(2024, 1, 1),
			freq:      domain.FrequencyDaily,
			after:     date(2024, 1, 1),
			want:      date(2024, 1, 2),
		},
		{
			name:      "monthly advances one month",
			scheduled: date(2024, 1, 15),
			freq:      domain.FrequencyMonthly,
			after:     date(2024, 1, 15),
			want:      date(2024, 2, 15),
		},
		{
			name:      "yearly advances one year",
			scheduled: date(2024, 3, 1),
			freq:      domain.FrequencyYearly,
			after:     date(2024, 3, 1),
			want:      date(2025, 3, 1),
		},
		{
			name:      "skips missed periods into the future",
			scheduled: date(2024, 1, 1),
			freq:      domain.FrequencyWeekly,
			after:     date(2024, 2, 20),
			want:      date(2024, 2, 26),
		},
		{
			name:      "jan 31 monthly normalizes",
			scheduled: date(2024, 1, 31),
			freq:      domain.FrequencyMonthly,
			after:     date(2024, 1, 31),
			want:      date(2024, 3, 2), // 2024 is a leap year
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Next(tt.scheduled, tt.freq, tt.after)
			if !ok {
				t.Fatal("Next returned ok=false for a valid frequency")
			}
			if !got.Equal(tt.want) {
				t.Errorf("Next = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNext_UnknownFrequency(t *testing.T) {
	t.Parallel()

	if _, ok := Next(date(2024, 1, 1), domain.Frequency("FORTNIGHTLY"), date(2024, 1, 1)); ok {
		t.Fatal("unknown frequency must report ok=false")
	}
}
