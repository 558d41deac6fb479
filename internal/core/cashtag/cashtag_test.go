package cashtag_test

import (
	"reflect"
	"testing"

	"sentimenttech/internal/core/cashtag"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"single tag", "buying $AAPL today", []string{"AAPL"}},
		{"lowercase upcased", "watch $aapl run", []string{"AAPL"}},
		{"mixed case", "$TsLa to the moon", []string{"TSLA"}},
		{"duplicates retained in order", "$aapl and $AAPL and $tsla", []string{"AAPL", "AAPL", "TSLA"}},
		{"digits stop the match", "$BRK2 reports", []string{"BRK"}},
		{"bare dollar ignored", "made $100 today", nil},
		{"no mentions", "great earnings call", nil},
		{"empty content", "", nil},
		{"adjacent punctuation", "($MSFT, $GOOG!)", []string{"MSFT", "GOOG"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cashtag.Extract(tc.content)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Extract(%q) = %v want %v", tc.content, got, tc.want)
			}
		})
	}
}

func TestExtract_NoMatchesIsNilNotEmpty(t *testing.T) {
	if got := cashtag.Extract("nothing here"); got != nil {
		t.Fatalf("expected nil slice got %v", got)
	}
}
