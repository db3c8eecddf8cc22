package analytics

import (
	"sort"

	"salespulse/models"
	"salespulse/utils"
)

// Aggregate collapses a flat transaction list into daily, monthly and
// per-product rollups plus overall totals. It is a pure function of its
// input; nothing is cached between calls.
func Aggregate(transactions []models.Transaction) models.SalesAggregate {
	dailyMap := make(map[string]*models.DailyRevenue)
	monthlyMap := make(map[string]*models.MonthlyRevenue)
	productMap := make(map[string]*models.ProductPerformance)

	// productOrder preserves first-encounter order so the revenue sort below
	// stays stable for ties.
	var productOrder []string

	var totalRevenue, totalCost float64

	for _, tx := range transactions {
		day := tx.Date.Format("2006-01-02")
		month := tx.Date.Format("2006-01")

		d, ok := dailyMap[day]
		if !ok {
			d = &models.DailyRevenue{Date: day}
			dailyMap[day] = d
		}
		d.Revenue += tx.Revenue
		d.Cost += tx.Cost

		m, ok := monthlyMap[month]
		if !ok {
			m = &models.MonthlyRevenue{Month: month}
			monthlyMap[month] = m
		}
		m.Revenue += tx.Revenue
		m.Cost += tx.Cost

		p, ok := productMap[tx.ProductName]
		if !ok {
			p = &models.ProductPerformance{ProductName: tx.ProductName}
			productMap[tx.ProductName] = p
			productOrder = append(productOrder, tx.ProductName)
		}
		p.TotalRevenue += tx.Revenue
		p.TotalCost += tx.Cost
		p.Quantity += tx.Quantity
		p.TransactionCount++

		totalRevenue += tx.Revenue
		totalCost += tx.Cost
	}

	daily := make([]models.DailyRevenue, 0, len(dailyMap))
	for _, d := range dailyMap {
		d.Revenue = utils.Round2(d.Revenue)
		d.Cost = utils.Round2(d.Cost)
		d.Profit = utils.Round2(d.Revenue - d.Cost)
		daily = append(daily, *d)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	monthly := make([]models.MonthlyRevenue, 0, len(monthlyMap))
	for _, m := range monthlyMap {
		m.Revenue = utils.Round2(m.Revenue)
		m.Cost = utils.Round2(m.Cost)
		m.Profit = utils.Round2(m.Revenue - m.Cost)
		if m.Revenue > 0 {
			m.ProfitMargin = utils.Round4(m.Profit / m.Revenue)
		}
		monthly = append(monthly, *m)
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Month < monthly[j].Month })

	products := make([]models.ProductPerformance, 0, len(productOrder))
	for _, name := range productOrder {
		p := productMap[name]
		p.TotalRevenue = utils.Round2(p.TotalRevenue)
		p.TotalCost = utils.Round2(p.TotalCost)
		p.TotalProfit = utils.Round2(p.TotalRevenue - p.TotalCost)
		if p.TotalRevenue > 0 {
			p.ProfitMargin = utils.Round4(p.TotalProfit / p.TotalRevenue)
		}
		products = append(products, *p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalRevenue > products[j].TotalRevenue
	})

	totals := models.SalesTotals{
		TotalRevenue:     utils.Round2(totalRevenue),
		TotalCost:        utils.Round2(totalCost),
		TransactionCount: len(transactions),
	}
	totals.TotalProfit = utils.Round2(totals.TotalRevenue - totals.TotalCost)
	if totals.TotalRevenue > 0 {
		totals.ProfitMargin = utils.Round4(totals.TotalProfit / totals.TotalRevenue)
	}

	return models.SalesAggregate{
		Daily:    daily,
		Monthly:  monthly,
		Products: products,
		Totals:   totals,
	}
}

// TopProducts returns the first n entries of the revenue-sorted product list.
func TopProducts(products []models.ProductPerformance, n int) []models.ProductPerformance {
	if n > len(products) {
		n = len(products)
	}
	if n < 0 {
		n = 0
	}
	return products[:n]
}

// BottomProducts re-sorts by total profit ascending and returns the first n.
// A product can appear both in the top-by-revenue and bottom-by-profit lists.
func BottomProducts(products []models.ProductPerformance, n int) []models.ProductPerformance {
	byProfit := make([]models.ProductPerformance, len(products))
	copy(byProfit, products)
	sort.SliceStable(byProfit, func(i, j int) bool {
		return byProfit[i].TotalProfit < byProfit[j].TotalProfit
	})
	if n > len(byProfit) {
		n = len(byProfit)
	}
	if n < 0 {
		n = 0
	}
	return byProfit[:n]
}

// Concentration reports the revenue share of the leading products. products
// must already be sorted by revenue descending, as Aggregate returns them.
func Concentration(products []models.ProductPerformance, totalRevenue float64) models.RevenueConcentration {
	if totalRevenue <= 0 || len(products) == 0 {
		return models.RevenueConcentration{DiversificationScore: 1}
	}

	topShare := products[0].TotalRevenue / totalRevenue

	var top3 float64
	for i := 0; i < len(products) && i < 3; i++ {
		top3 += products[i].TotalRevenue
	}
	top3Share := top3 / totalRevenue

	return models.RevenueConcentration{
		TopProductShare:      utils.Round4(topShare),
		Top3ProductShare:     utils.Round4(top3Share),
		DiversificationScore: utils.Round4(1 - top3Share),
	}
}

// GrowthRate returns the total-period revenue growth between the first and
// last month of the series (not per-month compounding). monthly must be
// sorted ascending.
func GrowthRate(monthly []models.MonthlyRevenue) float64 {
	if len(monthly) < 2 {
		return 0
	}
	first := monthly[0].Revenue
	last := monthly[len(monthly)-1].Revenue
	if first == 0 {
		return 0
	}
	return utils.Round4((last - first) / first)
}

// RecentTrend classifies the latest month-over-month revenue move for the
// insight synthesizer: more than +5% is "up", less than -5% is "down".
func RecentTrend(monthly []models.MonthlyRevenue) string {
	if len(monthly) < 2 {
		return "stable"
	}
	prev := monthly[len(monthly)-2].Revenue
	last := monthly[len(monthly)-1].Revenue
	if prev == 0 {
		return "stable"
	}
	change := (last - prev) / prev
	switch {
	case change > 0.05:
		return "up"
	case change < -0.05:
		return "down"
	default:
		return "stable"
	}
}
