package types

import (
	"encoding/json"
	"testing"
)

func TestFlexFloat64ParsesCurrencyStrings(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`1249.99`, 1249.99},
		{`"1249.99"`, 1249.99},
		{`"$1,249.99"`, 1249.99},
		{`" $1,249.99 "`, 1249.99},
		{`""`, 0},
		{`null`, 0},
	}

	for _, c := range cases {
		var f FlexFloat64
		if err := json.Unmarshal([]byte(c.in), &f); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", c.in, err)
			continue
		}
		if f.Float64() != c.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", c.in, f.Float64(), c.want)
		}
	}
}

func TestFlexFloat64RejectsGarbage(t *testing.T) {
	var f FlexFloat64
	if err := json.Unmarshal([]byte(`"about twelve"`), &f); err == nil {
		t.Error("Expected error for non-numeric string")
	}
}

func TestFlexListSingleOrArray(t *testing.T) {
	var fromArray FlexList[string]
	if err := json.Unmarshal([]byte(`["a","b"]`), &fromArray); err != nil {
		t.Fatalf("Unmarshal array failed: %v", err)
	}
	if len(fromArray.Slice()) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(fromArray.Slice()))
	}

	var fromSingle FlexList[string]
	if err := json.Unmarshal([]byte(`"a"`), &fromSingle); err != nil {
		t.Fatalf("Unmarshal single failed: %v", err)
	}
	if len(fromSingle.Slice()) != 1 || fromSingle[0] != "a" {
		t.Errorf("Expected [a], got %v", fromSingle.Slice())
	}
}
