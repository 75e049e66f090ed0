package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUnitCost(t *testing.T) {
	tests := []struct {
		name string
		cost string
		qty  string
		want string // empty means null
	}{
		{name: "even division", cost: "12.00", qty: "4", want: "3"},
		{name: "fractional result", cost: "10", qty: "3", want: "3.3333333333333333"},
		{name: "zero denominator yields null", cost: "12.00", qty: "0", want: ""},
		{name: "zero cost", cost: "0", qty: "5", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveUnitCost(MustMoney(tt.cost), MustMoney(tt.qty))
			if tt.want == "" {
				assert.False(t, got.Valid)
				return
			}
			assert.True(t, got.Valid)
			assert.True(t, got.Decimal.Equal(MustMoney(tt.want)),
				"want %s got %s", tt.want, got.Decimal)
		})
	}
}

func TestMulNull(t *testing.T) {
	got := MulNull(MustMoney("10"), SomeMoney(MustMoney("3.00")))
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(MustMoney("30.00")))

	got = MulNull(MustMoney("10"), NoMoney())
	assert.False(t, got.Valid, "null cost must stay null regardless of qty")
}

func TestAddNull_NullIsContagious(t *testing.T) {
	a := SomeMoney(MustMoney("1.50"))
	b := SomeMoney(MustMoney("2.50"))

	got := AddNull(a, b)
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(MustMoney("4.00")))

	assert.False(t, AddNull(a, NoMoney()).Valid)
	assert.False(t, AddNull(NoMoney(), b).Valid)
	assert.False(t, AddNull(NoMoney(), NoMoney()).Valid)
}

func TestSumNull(t *testing.T) {
	got := SumNull(
		SomeMoney(MustMoney("1")),
		SomeMoney(MustMoney("2")),
		SomeMoney(MustMoney("3")),
	)
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(MustMoney("6")))

	got = SumNull(
		SomeMoney(MustMoney("1")),
		NoMoney(),
		SomeMoney(MustMoney("3")),
	)
	assert.False(t, got.Valid, "one unpriced term makes the sum unpriced")

	got = SumNull()
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.IsZero(), "empty sum is zero, not null")
}

func TestDivNull(t *testing.T) {
	got := DivNull(SomeMoney(MustMoney("30.00")), MustMoney("5"))
	assert.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(MustMoney("6")))

	assert.False(t, DivNull(NoMoney(), MustMoney("5")).Valid)
	assert.False(t, DivNull(SomeMoney(MustMoney("30")), Zero()).Valid)
}

func TestDecimalPrecision_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3
	sum := MustMoney("0.1").Add(MustMoney("0.2"))
	assert.True(t, sum.Equal(MustMoney("0.3")))
}
