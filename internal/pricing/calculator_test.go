package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("解析金额失败 %q: %v", s, err)
	}
	return v
}

func TestApplyDiscountPercent(t *testing.T) {
	got := ApplyDiscount(dec(t, "100"), KindPercent, dec(t, "30"))
	if got.StringFixed(2) != "70.00" {
		t.Fatalf("期望 70.00, 实际 %s", got.StringFixed(2))
	}
}

func TestApplyDiscountPercentClampsAt100(t *testing.T) {
	got := ApplyDiscount(dec(t, "100"), KindPercent, dec(t, "150"))
	if got.StringFixed(2) != "0.00" {
		t.Fatalf("百分比超过 100 应钳制为全额折扣, 实际 %s", got.StringFixed(2))
	}
}

func TestApplyDiscountFixedFloorsAtZero(t *testing.T) {
	got := ApplyDiscount(dec(t, "50"), KindFixed, dec(t, "80"))
	if got.StringFixed(2) != "0.00" {
		t.Fatalf("固定折扣不应产生负价, 实际 %s", got.StringFixed(2))
	}
}

func TestApplyDiscountNegativeValueIgnored(t *testing.T) {
	got := ApplyDiscount(dec(t, "100"), KindFixed, dec(t, "-10"))
	if got.StringFixed(2) != "100.00" {
		t.Fatalf("负折扣值应按 0 处理, 实际 %s", got.StringFixed(2))
	}
}

func TestApplyDiscountRounding(t *testing.T) {
	// 33.335 按远离零的半进位取整到 33.34
	got := ApplyDiscount(dec(t, "66.67"), KindPercent, dec(t, "50"))
	if got.StringFixed(2) != "33.34" {
		t.Fatalf("期望 33.34, 实际 %s", got.StringFixed(2))
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"fixed", KindFixed, false},
		{"percent", KindPercent, false},
		{" Percent ", KindPercent, false},
		{"bogus", KindFixed, true},
	}
	for _, c := range cases {
		got, err := ParseKind(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%q 应返回错误", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q 解析失败: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q 期望 %v, 实际 %v", c.in, c.want, got)
		}
	}
}
