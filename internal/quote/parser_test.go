package quote

import (
	"errors"
	"strings"
	"testing"

	"stocker/internal/customerrors"
)

func TestParse(t *testing.T) {
	payload := []byte(`[{"ticker":"AAPL","tngoLast":110.5,"prevClose":100,"volume":12}]`)
	q, err := Parse(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.LastPrice != 110.5 || q.PrevClose != 100 {
		t.Errorf("unexpected snapshot: %+v", q)
	}
}

func TestParse_UsesFirstElement(t *testing.T) {
	q, err := Parse([]byte(`[{"tngoLast":1,"prevClose":2},{"tngoLast":3,"prevClose":4}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.LastPrice != 1 || q.PrevClose != 2 {
		t.Errorf("expected first element, got %+v", q)
	}
}

func TestParse_InvalidShape(t *testing.T) {
	cases := map[string]string{
		"not json":    `<html>`,
		"object":      `{"tngoLast":1,"prevClose":2}`,
		"empty array": `[]`,
		"empty body":  ``,
		"number":      `42`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(payload)); !errors.Is(err, customerrors.ErrInvalidResponseShape) {
				t.Fatalf("expected ErrInvalidResponseShape, got %v", err)
			}
		})
	}
}

func TestParse_MissingField(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"no last", `[{"prevClose":100}]`, FieldLastPrice},
		{"null last", `[{"tngoLast":null,"prevClose":100}]`, FieldLastPrice},
		{"string last", `[{"tngoLast":"110","prevClose":100}]`, FieldLastPrice},
		{"no prev close", `[{"tngoLast":110}]`, FieldPrevClose},
		{"bool prev close", `[{"tngoLast":110,"prevClose":true}]`, FieldPrevClose},
		{"element not object", `[5]`, FieldLastPrice},
		{"huge last", `[{"tngoLast":1e400,"prevClose":100}]`, FieldLastPrice},
		{"huge prev close", `[{"tngoLast":1,"prevClose":-1e400}]`, FieldPrevClose},
		{"duplicate key last wins", `[{"tngoLast":1,"tngoLast":"x","prevClose":2}]`, FieldLastPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.payload))
			if !errors.Is(err, customerrors.ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name %s", err, tc.field)
			}
		})
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	q, err := Parse([]byte(`[{"tngoLast":"x","tngoLast":7.5,"prevClose":2,"prevClose":4}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.LastPrice != 7.5 || q.PrevClose != 4 {
		t.Errorf("expected last occurrences, got %+v", q)
	}
}
