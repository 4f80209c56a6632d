package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_ExactSubtraction(t *testing.T) {
	balance := MoneyFromFloat(20)
	price := MoneyFromFloat(15.01)

	assert.Equal(t, Money(499), balance-price)
	assert.Equal(t, "4.99", (balance - price).String())
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "number", input: `15.01`, want: 1501},
		{name: "integer", input: `20`, want: 2000},
		{name: "string", input: `"15.01"`, want: 1501},
		{name: "dollar string", input: `"$4.99"`, want: 499},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Money{"delta": -1501})
	require.NoError(t, err)
	assert.JSONEq(t, `{"delta": -15.01}`, string(data))
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "$1,234.50", Money(123450).Format())
	assert.Equal(t, "$4.99", Money(499).Format())
	assert.Equal(t, "-$0.05", Money(-5).Format())
}
