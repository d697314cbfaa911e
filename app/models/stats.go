package models

// Statistics is the roll-up over a (possibly filtered) roster, as shown on
// the fee overview dashboard. The same shape is served pre-aggregated by
// GET /fees/analytics.
type Statistics struct {
	TotalStudents      int     `json:"totalStudents"`
	TotalFeeAmount     float64 `json:"totalFeeAmount"`
	TotalPaidAmount    float64 `json:"totalPaidAmount"`
	TotalPendingAmount float64 `json:"totalPendingAmount"`
	FullyPaidCount     int     `json:"fullyPaidCount"`
	PendingCount       int     `json:"pendingCount"`
	CollectionRate     int     `json:"collectionRate"`
}
