package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
)

const topChartEntries = 10

// ProductTotal is one entry of a per-product breakdown, ordered slices
// instead of a map so the descending order survives JSON encoding.
type ProductTotal struct {
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

// DashboardMetrics is the full derived-analytics record for one canonical
// table. It is recomputed from scratch on every call, never cached.
type DashboardMetrics struct {
	TotalRevenue       float64        `json:"total_revenue"`
	TotalOrders        int            `json:"total_orders"`
	AvgOrderValue      float64        `json:"avg_order_value"`
	UniqueProducts     int            `json:"unique_products"`
	SalesByProduct     []ProductTotal `json:"sales_by_product"`
	QuantityByProduct  []ProductTotal `json:"quantity_by_product,omitempty"`
	SalesTrend         []float64      `json:"sales_trend"`
	NextPeriodForecast float64        `json:"next_period_forecast"`
	ChartLabels        []string       `json:"chart_labels"`
	ChartData          []float64      `json:"chart_data"`
	Insights           []string       `json:"insights"`
	LowConfidence      bool           `json:"low_confidence"`
}

// Compute derives all dashboard metrics from one canonical table. The
// computation is deterministic and total: an empty table produces zeroed
// metrics and the single always-on revenue insight, not an error.
func Compute(nt NormalizedTable) DashboardMetrics {
	var total float64
	for _, v := range nt.Amount {
		total += v
	}

	m := DashboardMetrics{
		TotalRevenue:  round2(total),
		TotalOrders:   nt.NumRows(),
		LowConfidence: nt.LowConfidence(),
	}
	if m.TotalOrders > 0 {
		m.AvgOrderValue = round2(total / float64(m.TotalOrders))
	}

	m.SalesByProduct = groupTotals(nt.Product, nt.Amount)
	m.UniqueProducts = len(m.SalesByProduct)
	if nt.Quantity != nil {
		m.QuantityByProduct = groupTotals(nt.Product, nt.Quantity)
	}

	top := m.SalesByProduct
	if len(top) > topChartEntries {
		top = top[:topChartEntries]
	}
	m.ChartLabels = make([]string, len(top))
	m.ChartData = make([]float64, len(top))
	for i, p := range top {
		m.ChartLabels[i] = p.Product
		m.ChartData[i] = p.Total
	}

	m.SalesTrend = trendSeries(nt)
	m.NextPeriodForecast = round2(Forecast(nt))
	m.Insights = generateInsights(nt, total, m.SalesByProduct)
	return m
}

// groupTotals sums values per product and orders the result descending by
// total, first-seen product winning ties.
func groupTotals(products []string, values []float64) []ProductTotal {
	totals := make(map[string]float64, len(products))
	order := make([]string, 0, len(products))
	for i, p := range products {
		if i >= len(values) {
			break
		}
		if _, seen := totals[p]; !seen {
			order = append(order, p)
		}
		totals[p] += values[i]
	}
	out := make([]ProductTotal, len(order))
	for i, p := range order {
		out[i] = ProductTotal{Product: p, Total: totals[p]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// generateInsights renders the fixed narrative templates. Each template is
// appended only when its precondition holds; a precondition that fails
// skips that sentence and never the whole computation.
func generateInsights(nt NormalizedTable, revenue float64, byProduct []ProductTotal) []string {
	insights := []string{
		fmt.Sprintf("Total revenue generated is %s%s.", DefaultGlyph, humanize.FormatFloat("#,###.##", round2(revenue))),
	}

	if len(byProduct) > 0 {
		top := byProduct[0]
		if revenue > 0 {
			share := top.Total / revenue * 100
			insights = append(insights, fmt.Sprintf("Top Performer: '%s' contributes %.1f%% of total sales.", top.Product, share))
		} else {
			insights = append(insights, fmt.Sprintf("Top Performer: '%s' is the highest selling item.", top.Product))
		}
	}

	if n := nt.NumRows(); n > 0 {
		mean := revenue / float64(n)
		if mean > 0 {
			high := 0
			for _, v := range nt.Amount {
				if v > 2*mean {
					high++
				}
			}
			if high > 0 {
				insights = append(insights, fmt.Sprintf("Detected %d transactions significantly higher than the average ticket size (%s%.2f).", high, DefaultGlyph, mean))
			}
		}
	}
	return insights
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
