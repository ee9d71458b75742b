package entities

import "time"

type AnalyticsWindow struct {
	Start *time.Time
	End   *time.Time
}

type DeliveryCounts struct {
	Total      int64
	Pending    int64
	Accepted   int64
	InProgress int64
	Completed  int64
	Cancelled  int64
}

type RevenueSummary struct {
	Total                  float64
	AverageOrderValue      float64
	SuccessfulTransactions int64
}

type UserCounts struct {
	Customers       int64
	Riders          int64
	AvailableRiders int64
}

type PerformanceSummary struct {
	AverageDeliveryMinutes float64
}

type AnalyticsReport struct {
	Deliveries  DeliveryCounts
	Revenue     RevenueSummary
	Users       UserCounts
	Performance PerformanceSummary
}
