package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Price
		wantErr bool
	}{
		{name: "number", json: `{"price": 120.5}`, want: 120.5},
		{name: "integer", json: `{"price": 80}`, want: 80},
		{name: "quoted number", json: `{"price": "45.90"}`, want: 45.90},
		{name: "quoted with spaces", json: `{"price": " 45.90 "}`, want: 45.90},
		{name: "null", json: `{"price": null}`, want: 0},
		{name: "empty string", json: `{"price": ""}`, want: 0},
		{name: "garbage string", json: `{"price": "cher"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Price Price `json:"price"`
			}
			err := json.Unmarshal([]byte(tt.json), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Price)
		})
	}
}

func TestPrice_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Price Price `json:"price"`
	}{Price: 45.9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 45.9}`, string(data))
}

func TestPrice_Format(t *testing.T) {
	assert.Equal(t, "120.50 TND", Price(120.5).Format())
	assert.Equal(t, "80.00 TND", Price(80).Format())
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Price
		wantErr bool
	}{
		{name: "valid", in: "120.5", want: 120.5},
		{name: "trimmed", in: " 80 ", want: 80},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
