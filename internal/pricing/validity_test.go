package pricing

import (
	"testing"
	"time"
)

func TestUsableWindowBounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	// 下界含：validFrom == now 可用
	if !Usable(true, &now, &after, now) {
		t.Fatal("validFrom == now 时规则应可用")
	}
	// 上界不含：validUntil == now 不可用
	if Usable(true, &before, &now, now) {
		t.Fatal("validUntil == now 时规则不应可用")
	}
}

func TestUsableInactive(t *testing.T) {
	now := time.Now()
	if Usable(false, nil, nil, now) {
		t.Fatal("停用规则不应可用")
	}
}

func TestUsableOpenEnds(t *testing.T) {
	now := time.Now()
	if !Usable(true, nil, nil, now) {
		t.Fatal("无时间窗口的启用规则应可用")
	}
	future := now.Add(time.Hour)
	if Usable(true, &future, nil, now) {
		t.Fatal("未开始的规则不应可用")
	}
	past := now.Add(-time.Hour)
	if Usable(true, nil, &past, now) {
		t.Fatal("已过期的规则不应可用")
	}
}
