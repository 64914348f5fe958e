package models

// AnalyticsOverview represents the main analytics dashboard overview
type AnalyticsOverview struct {
	TotalRevenue                 float64 `json:"total_revenue"`                   // Total revenue this month
	RevenueGrowthPercent         float64 `json:"revenue_growth_percent"`          // % change from last month
	TotalOrders                  int     `json:"total_orders"`                    // Number of orders this month
	OrdersGrowthPercent          float64 `json:"orders_growth_percent"`           // % change from last month
	TotalStockUnits              int     `json:"total_stock_units"`               // Units in stock across the catalog
	ActiveCustomers              int     `json:"active_customers"`                // Customers with an order in last 90 days
	ActiveCustomersGrowthPercent float64 `json:"active_customers_growth_percent"` // % change (previous 90-day window)
}

// MonthlyRevenueData is one chart bucket for the revenue-by-month view.
type MonthlyRevenueData struct {
	Month       string  `json:"month"`        // Month abbreviation (Jan, Feb, etc.)
	MonthNumber int     `json:"month_number"` // Month number (1-12)
	Revenue     float64 `json:"revenue"`      // Total revenue for the month
}

// TopProduct represents a top performing product with sales and revenue metrics
type TopProduct struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	OrderCount     int     `json:"order_count"`     // Distinct orders containing this product
	SalesCount     int     `json:"sales_count"`     // Total quantity sold
	Revenue        float64 `json:"revenue"`         // Total revenue from this product
	RevenuePercent float64 `json:"revenue_percent"` // Share of total revenue
}
