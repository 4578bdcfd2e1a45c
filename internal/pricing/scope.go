package pricing

// ScopeType 规则适用范围类型
type ScopeType uint8

const (
	// ScopeAll 适用于全部商品
	ScopeAll ScopeType = iota
	// ScopeCategories 适用于指定分类
	ScopeCategories
	// ScopeProducts 适用于指定商品
	ScopeProducts
)

// Scope 规则适用范围（活动与优惠券共用；促销价仅按商品列表匹配）
type Scope struct {
	Type        ScopeType
	CategoryIDs []uint
	ProductIDs  []uint
}

// MatchesProduct 判断范围是否覆盖指定商品
func (s Scope) MatchesProduct(productID, categoryID uint) bool {
	switch s.Type {
	case ScopeCategories:
		return containsID(s.CategoryIDs, categoryID)
	case ScopeProducts:
		return containsID(s.ProductIDs, productID)
	default:
		return true
	}
}

// MatchesCart 判断范围是否覆盖购物车（至少一行命中即可）
func (s Scope) MatchesCart(cart Cart) bool {
	if s.Type == ScopeAll {
		return len(cart.Lines) > 0
	}
	for _, line := range cart.Lines {
		if s.MatchesProduct(line.ProductID, line.CategoryID) {
			return true
		}
	}
	return false
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
