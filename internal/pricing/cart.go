package pricing

import "github.com/shopspring/decimal"

// Line 购物车行（单价已为促销价后价格）
type Line struct {
	ProductID          uint
	CategoryID         uint
	Quantity           int
	UnitPriceOriginal  decimal.Decimal
	UnitPriceAfterDeal decimal.Decimal
	DealID             *uint
}

// Cart 待计价购物车快照
type Cart struct {
	CustomerID uint
	Lines      []Line
}

// ItemsSubtotal 商品小计：促销价后单价乘数量，逐行保留两位小数后求和
func (c Cart) ItemsSubtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		lineTotal := line.UnitPriceAfterDeal.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal)
	}
	return subtotal.Round(2)
}
