package timeparse

import (
	"testing"
	"time"
)

func TestSinceMidnight(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "hms",
			in:   "08:24:36",
			want: 8*time.Hour + 24*time.Minute + 36*time.Second,
		},
		{
			name: "hms with fraction",
			in:   "23:59:59.999",
			want: 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond,
		},
		{
			name: "hm",
			in:   "00:35",
			want: 35 * time.Minute,
		},
		{
			name: "twelve hour clock",
			in:   "12:34:59 AM",
			want: 34*time.Minute + 59*time.Second,
		},
		{
			name: "twelve hour lowercase",
			in:   "12:35 am",
			want: 35 * time.Minute,
		},
		{
			name: "bare pm hour",
			in:   "4pm",
			want: 16 * time.Hour,
		},
		{
			name: "spelled units",
			in:   "12h 34m 59s",
			want: 12*time.Hour + 34*time.Minute + 59*time.Second,
		},
		{
			name: "spelled units compact",
			in:   "8h24m36s",
			want: 8*time.Hour + 24*time.Minute + 36*time.Second,
		},
		{
			name: "hours and minutes only",
			in:   "6h 45m",
			want: 6*time.Hour + 45*time.Minute,
		},
		{
			name: "bare hour",
			in:   "12h",
			want: 12 * time.Hour,
		},
		{
			name: "compact 12h with meridiem",
			in:   "1235am",
			want: 35 * time.Minute,
		},
		{
			name: "compact 24h",
			in:   "1504",
			want: 15*time.Hour + 4*time.Minute,
		},
		{
			name: "rfc3339 ignores the date",
			in:   "2001-07-08T00:34:59.026490+09:30",
			want: 34*time.Minute + 59*time.Second + 26490*time.Microsecond,
		},
		{
			name: "ctime ignores the date",
			in:   "Sun Jul  8 00:34:59 2001",
			want: 34*time.Minute + 59*time.Second,
		},
		{
			name: "surrounding whitespace",
			in:   "  08:24:36  ",
			want: 8*time.Hour + 24*time.Minute + 36*time.Second,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
		{
			name:    "nonsense",
			in:      "not a time",
			wantErr: true,
		},
		{
			name:    "out of range hour",
			in:      "25:00:00",
			wantErr: true,
		},
		{
			name:    "out of range minute",
			in:      "10:61",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SinceMidnight(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SinceMidnight(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("SinceMidnight(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
