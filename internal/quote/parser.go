package quote

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"stocker/internal/customerrors"
	"stocker/internal/model"
)

const (
	FieldLastPrice = "tngoLast"
	FieldPrevClose = "prevClose"
)

// Parse extracts the last price and previous close from the first element of
// a Tiingo IEX response, which is a JSON array.
func Parse(payload []byte) (model.QuoteSnapshot, error) {
	if !gjson.ValidBytes(payload) {
		return model.QuoteSnapshot{}, fmt.Errorf("%w: response is not valid JSON", customerrors.ErrInvalidResponseShape)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsArray() {
		return model.QuoteSnapshot{}, fmt.Errorf("%w: response does not contain an array with at least one element", customerrors.ErrInvalidResponseShape)
	}
	first := root.Get("0")
	if !first.Exists() {
		return model.QuoteSnapshot{}, fmt.Errorf("%w: response does not contain an array with at least one element", customerrors.ErrInvalidResponseShape)
	}

	last, err := numberField(first, FieldLastPrice)
	if err != nil {
		return model.QuoteSnapshot{}, err
	}
	prev, err := numberField(first, FieldPrevClose)
	if err != nil {
		return model.QuoteSnapshot{}, err
	}
	return model.QuoteSnapshot{LastPrice: last, PrevClose: prev}, nil
}

// numberField reads a finite number. When a key is repeated the last
// occurrence wins.
func numberField(entry gjson.Result, name string) (float64, error) {
	if !entry.IsObject() {
		return 0, fmt.Errorf("%w: '%s' in API response", customerrors.ErrMissingField, name)
	}
	var v gjson.Result
	entry.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			v = value
		}
		return true
	})
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: '%s' in API response", customerrors.ErrMissingField, name)
	}
	f := v.Float()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: '%s' in API response is out of range", customerrors.ErrMissingField, name)
	}
	return f, nil
}
