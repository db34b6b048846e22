package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestDriverErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"unique violation", &pq.Error{Code: "23505"}, isUniqueViolation, true},
		{"foreign key violation", &pq.Error{Code: "23503"}, isForeignKeyViolation, true},
		{"not-null violation", &pq.Error{Code: "23502"}, isNotNullViolation, true},
		{"wrapped not-null violation", fmt.Errorf("update company: %w", &pq.Error{Code: "23502"}), isNotNullViolation, true},
		{"not-null check rejects other codes", &pq.Error{Code: "23505"}, isNotNullViolation, false},
		{"non-driver error", errors.New("connection reset"), isNotNullViolation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
