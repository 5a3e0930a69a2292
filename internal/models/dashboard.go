package models

// ConsumerStats summarizes a consumer's dashboard
type ConsumerStats struct {
	ActiveConnections int64 `json:"activeConnections"`
	PendingRequests   int64 `json:"pendingRequests"`
	TotalViews        int64 `json:"totalViews"`
}

// OwnerStats summarizes an owner's dashboard
type OwnerStats struct {
	PendingRequests   int64 `json:"pendingRequests"`
	ActiveConnections int64 `json:"activeConnections"`
	Offerings         int64 `json:"offerings"`
}
