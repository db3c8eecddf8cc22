package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salespulse/models"
)

func mkTx(date, product string, quantity, revenue, cost float64) models.Transaction {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:        t,
		ProductName: product,
		Quantity:    quantity,
		Revenue:     revenue,
		Cost:        cost,
	}
}

func TestAggregateCoffeeShopScenario(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-01-05", "Espresso", 10, 35, 8),
		mkTx("2024-01-05", "Latte", 5, 25, 7.5),
		mkTx("2024-01-06", "Espresso", 12, 42, 9.6),
		mkTx("2024-02-03", "Cappuccino", 8, 36, 9.6),
	}

	agg := Aggregate(transactions)

	assert.Equal(t, 138.0, agg.Totals.TotalRevenue)
	assert.Equal(t, 34.7, agg.Totals.TotalCost)
	assert.Equal(t, 103.3, agg.Totals.TotalProfit)
	assert.InDelta(t, 0.7486, agg.Totals.ProfitMargin, 1e-9)
	assert.Equal(t, 4, agg.Totals.TransactionCount)

	assert.Len(t, agg.Daily, 3)
	assert.Equal(t, "2024-01-05", agg.Daily[0].Date)
	assert.Equal(t, 60.0, agg.Daily[0].Revenue)
	assert.Equal(t, 44.5, agg.Daily[0].Profit)

	assert.Len(t, agg.Monthly, 2)
	assert.Equal(t, "2024-01", agg.Monthly[0].Month)
	assert.Equal(t, 102.0, agg.Monthly[0].Revenue)
	assert.Equal(t, "2024-02", agg.Monthly[1].Month)

	assert.Len(t, agg.Products, 3)
	assert.Equal(t, "Espresso", agg.Products[0].ProductName)
	assert.Equal(t, 77.0, agg.Products[0].TotalRevenue)
	assert.Equal(t, 22.0, agg.Products[0].Quantity)
	assert.Equal(t, 2, agg.Products[0].TransactionCount)
}

func TestAggregatePartitionInvariant(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-03-01", "A", 1, 10.11, 3.33),
		mkTx("2024-03-01", "B", 2, 20.22, 6.66),
		mkTx("2024-03-15", "A", 3, 30.33, 9.99),
		mkTx("2024-04-02", "C", 4, 40.44, 13.32),
		mkTx("2024-05-20", "B", 5, 50.55, 16.65),
	}

	var wantRevenue, wantCost float64
	for _, tx := range transactions {
		wantRevenue += tx.Revenue
		wantCost += tx.Cost
	}

	agg := Aggregate(transactions)

	var dailyRevenue, dailyCost float64
	for _, d := range agg.Daily {
		dailyRevenue += d.Revenue
		dailyCost += d.Cost
	}
	assert.InDelta(t, wantRevenue, dailyRevenue, 0.01)
	assert.InDelta(t, wantCost, dailyCost, 0.01)

	var monthlyRevenue float64
	for _, m := range agg.Monthly {
		monthlyRevenue += m.Revenue
	}
	assert.InDelta(t, wantRevenue, monthlyRevenue, 0.01)

	var productRevenue float64
	for _, p := range agg.Products {
		productRevenue += p.TotalRevenue
	}
	assert.InDelta(t, wantRevenue, productRevenue, 0.01)
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := Aggregate(nil)

	assert.Empty(t, agg.Daily)
	assert.Empty(t, agg.Monthly)
	assert.Empty(t, agg.Products)
	assert.Equal(t, 0.0, agg.Totals.TotalRevenue)
	assert.Equal(t, 0.0, agg.Totals.ProfitMargin)
}

func TestAggregateProductNamesAreCaseSensitive(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-01-01", "espresso", 1, 10, 2),
		mkTx("2024-01-01", "Espresso", 1, 10, 2),
	}

	agg := Aggregate(transactions)
	assert.Len(t, agg.Products, 2)
}

func TestAggregateRevenueTieKeepsEncounterOrder(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-01-01", "First", 1, 50, 10),
		mkTx("2024-01-01", "Second", 1, 50, 20),
		mkTx("2024-01-01", "Bigger", 1, 80, 10),
	}

	agg := Aggregate(transactions)
	assert.Equal(t, "Bigger", agg.Products[0].ProductName)
	assert.Equal(t, "First", agg.Products[1].ProductName)
	assert.Equal(t, "Second", agg.Products[2].ProductName)
}

func TestTopAndBottomProducts(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-01-01", "HighRevLowProfit", 1, 100, 99),
		mkTx("2024-01-01", "MidRev", 1, 50, 10),
		mkTx("2024-01-01", "LowRev", 1, 10, 1),
	}

	agg := Aggregate(transactions)

	top := TopProducts(agg.Products, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "HighRevLowProfit", top[0].ProductName)

	bottom := BottomProducts(agg.Products, 2)
	assert.Len(t, bottom, 2)
	assert.Equal(t, "HighRevLowProfit", bottom[0].ProductName) // profit 1.0
	assert.Equal(t, "LowRev", bottom[1].ProductName)           // profit 9.0

	// Top-by-revenue and bottom-by-profit may share a product.
	assert.Equal(t, top[0].ProductName, bottom[0].ProductName)

	assert.Len(t, TopProducts(agg.Products, 10), 3)
	assert.Empty(t, TopProducts(agg.Products, 0))
}

func TestConcentration(t *testing.T) {
	transactions := []models.Transaction{
		mkTx("2024-01-01", "A", 1, 50, 0),
		mkTx("2024-01-01", "B", 1, 25, 0),
		mkTx("2024-01-01", "C", 1, 15, 0),
		mkTx("2024-01-01", "D", 1, 10, 0),
	}

	agg := Aggregate(transactions)
	conc := Concentration(agg.Products, agg.Totals.TotalRevenue)

	assert.InDelta(t, 0.5, conc.TopProductShare, 1e-9)
	assert.InDelta(t, 0.9, conc.Top3ProductShare, 1e-9)
	assert.InDelta(t, 0.1, conc.DiversificationScore, 1e-9)

	// The identities hold by construction.
	assert.LessOrEqual(t, conc.TopProductShare, conc.Top3ProductShare)
	assert.LessOrEqual(t, conc.Top3ProductShare, 1.0)
	assert.InDelta(t, 1-conc.Top3ProductShare, conc.DiversificationScore, 1e-9)
}

func TestConcentrationDegenerate(t *testing.T) {
	conc := Concentration(nil, 0)
	assert.Equal(t, 0.0, conc.TopProductShare)
	assert.Equal(t, 0.0, conc.Top3ProductShare)
	assert.Equal(t, 1.0, conc.DiversificationScore)
}

func TestGrowthRate(t *testing.T) {
	monthly := []models.MonthlyRevenue{
		{Month: "2024-01", Revenue: 100},
		{Month: "2024-02", Revenue: 80},
		{Month: "2024-03", Revenue: 150},
	}
	assert.InDelta(t, 0.5, GrowthRate(monthly), 1e-9)

	assert.Equal(t, 0.0, GrowthRate(monthly[:1]))
	assert.Equal(t, 0.0, GrowthRate(nil))
	assert.Equal(t, 0.0, GrowthRate([]models.MonthlyRevenue{
		{Month: "2024-01", Revenue: 0},
		{Month: "2024-02", Revenue: 100},
	}))
}

func TestRecentTrend(t *testing.T) {
	up := []models.MonthlyRevenue{{Revenue: 100}, {Revenue: 120}}
	down := []models.MonthlyRevenue{{Revenue: 100}, {Revenue: 80}}
	flat := []models.MonthlyRevenue{{Revenue: 100}, {Revenue: 103}}

	assert.Equal(t, "up", RecentTrend(up))
	assert.Equal(t, "down", RecentTrend(down))
	assert.Equal(t, "stable", RecentTrend(flat))
	assert.Equal(t, "stable", RecentTrend(nil))
	assert.Equal(t, "stable", RecentTrend([]models.MonthlyRevenue{{Revenue: 0}, {Revenue: 50}}))
}
